package handlers

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/ashimpoudel/portfolio"
)

// ResumePath is the download route for the resume.
const ResumePath = "/resume"

// DefaultResumeName is the filename offered to the browser.
const DefaultResumeName = "Ashim_Poudel_Resume.pdf"

const msgResumeMissing = "Resume is not available."

var errResumeNotConfigured = errors.New("resume path not configured")

// Resume serves the resume file as an attachment.
type Resume struct {
	open     func() (fs.File, error)
	filename string
}

// NewResume serves the file at path. An empty path makes the route
// answer 404.
func NewResume(path, filename string) *Resume {
	h := &Resume{filename: filename}
	if path != "" {
		h.open = func() (fs.File, error) { return os.Open(path) }
	}
	return h.withDefaults()
}

// NewResumeFS serves name from fsys.
func NewResumeFS(fsys fs.FS, name, filename string) *Resume {
	h := &Resume{
		open:     func() (fs.File, error) { return fsys.Open(name) },
		filename: filename,
	}
	return h.withDefaults()
}

func (h *Resume) withDefaults() *Resume {
	if h.filename == "" {
		h.filename = DefaultResumeName
	}
	return h
}

func (h *Resume) Routes(r portfolio.Router) {
	r.GET(ResumePath, h.download)
}

func (h *Resume) download(c portfolio.Context) error {
	if h.open == nil {
		return portfolio.ErrNotFound(msgResumeMissing, portfolio.WithError(errResumeNotConfigured))
	}

	f, err := h.open()
	if err != nil {
		return portfolio.ErrNotFound(msgResumeMissing, portfolio.WithError(err))
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return portfolio.ErrNotFound(msgResumeMissing, portfolio.WithError(fs.ErrNotExist))
	}

	rs, ok := f.(io.ReadSeeker)
	if !ok {
		return errors.New("resume: file does not support seeking")
	}
	return c.Attachment(h.filename, rs, info.ModTime())
}
