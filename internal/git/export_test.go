package git

// ListRemoteWithClient exposes listRemote to external test packages.
var ListRemoteWithClient = listRemote
