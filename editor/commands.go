package editor

// Command describes an asynchronous side effect requested by Model.Update.
// The Executor runs it and reports back with a FileOpenedMsg or FileSavedMsg.
type Command interface {
	command()
}

// LoadFile reads Path.
type LoadFile struct {
	Path string
}

// PickAndLoad asks the user for a file, then reads it.
type PickAndLoad struct{}

// SaveFile writes Text to Path.
type SaveFile struct {
	Path string
	Text string
}

// PickAndSave asks the user for a destination, then writes Text to it.
type PickAndSave struct {
	Text string
}

func (LoadFile) command()    {}
func (PickAndLoad) command() {}
func (SaveFile) command()    {}
func (PickAndSave) command() {}
