package utils

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Standard progress bar descriptions
const (
	DescScanning   = "Scanning"
	DescExtracting = "Extracting"
)

// NewProgressBarTo creates a consistently styled progress bar on w. A
// negative total renders a spinner. A nil writer discards all output.
//
// Example:
//
//	bar := utils.NewProgressBarTo(os.Stderr, len(files), utils.DescExtracting)
//	defer bar.Finish()
func NewProgressBarTo(w io.Writer, total int, description string) *progressbar.ProgressBar {
	if w == nil {
		w = io.Discard
	}

	opts := []progressbar.Option{
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	}

	if total < 0 {
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	} else {
		opts = append(opts,
			progressbar.OptionShowIts(),
		)
	}

	return progressbar.NewOptions(total, opts...)
}
