package sink

import (
	"context"

	"golang.org/x/tools/txtar"
)

// TxtarSink collects files into a txtar archive, in write order.
// A later write to the same path replaces the earlier content in place.
type TxtarSink struct {
	// Comment is placed at the top of the archive.
	Comment string

	files []txtar.File
}

// NewTxtarSink creates an empty TxtarSink.
func NewTxtarSink(comment string) *TxtarSink {
	return &TxtarSink{Comment: comment}
}

// WriteFile appends content to the archive.
func (s *TxtarSink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data := append([]byte(nil), content...)
	for i := range s.files {
		if s.files[i].Name == path {
			s.files[i].Data = data
			return nil
		}
	}
	s.files = append(s.files, txtar.File{Name: path, Data: data})
	return nil
}

// Archive returns the collected files.
func (s *TxtarSink) Archive() *txtar.Archive {
	a := &txtar.Archive{Comment: []byte(s.Comment)}
	if len(a.Comment) > 0 && a.Comment[len(a.Comment)-1] != '\n' {
		a.Comment = append(a.Comment, '\n')
	}
	a.Files = append(a.Files, s.files...)
	return a
}

// Bytes returns the formatted archive.
func (s *TxtarSink) Bytes() []byte {
	return txtar.Format(s.Archive())
}
