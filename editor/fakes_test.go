package editor

import (
	"github.com/ionut-t/teaedit/core"
)

type savedFile struct {
	path string
	text string
}

type fakeFiles struct {
	files   map[string]string
	loadErr error
	saveErr error
	saved   []savedFile
}

func newFakeFiles(files map[string]string) *fakeFiles {
	if files == nil {
		files = map[string]string{}
	}
	return &fakeFiles{files: files}
}

func (f *fakeFiles) Load(path string) (string, error) {
	if f.loadErr != nil {
		return "", f.loadErr
	}
	text, ok := f.files[path]
	if !ok {
		return "", core.NewIOError(core.KindNotFound, path, nil)
	}
	return text, nil
}

func (f *fakeFiles) Save(path, text string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.files[path] = text
	f.saved = append(f.saved, savedFile{path: path, text: text})
	return nil
}

type fakeDialogs struct {
	openPath string
	savePath string
	err      error
	opens    int
	saves    int
}

func (d *fakeDialogs) PickOpen() (string, error) {
	d.opens++
	if d.err != nil {
		return "", d.err
	}
	return d.openPath, nil
}

func (d *fakeDialogs) PickSave() (string, error) {
	d.saves++
	if d.err != nil {
		return "", d.err
	}
	return d.savePath, nil
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) Write(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func (c *fakeClipboard) Read() (string, error) {
	return c.text, c.err
}
