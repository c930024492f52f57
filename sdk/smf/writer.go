package smf

import (
	"os"
	"time"

	"go.uber.org/multierr"
)

// WriteFile writes the encoded file image to path in a single sequential
// write. The file handle is released on every exit path; a failed write may
// leave a partial or absent file behind, so callers needing atomicity must
// write to a temporary name and rename themselves.
func WriteFile(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	_, err = f.Write(data)
	return err
}

// OutputFilename builds a timestamped file name of the form
// "<prefix>_<YYYYMMDD_HHMMSS><ext>" so successive recordings never clobber
// one another.
func OutputFilename(prefix, ext string, t time.Time) string {
	return prefix + "_" + t.Format("20060102_150405") + ext
}
