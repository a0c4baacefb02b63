package hotkey

// FakeHotkey is a Hotkey driven by SimKeydown, for tests.
type FakeHotkey struct {
	keydown    chan struct{}
	Registered bool
	RegErr     error
}

func NewFake() *FakeHotkey {
	return &FakeHotkey{keydown: make(chan struct{}, 1)}
}

func (f *FakeHotkey) Register() error {
	if f.RegErr != nil {
		return f.RegErr
	}
	f.Registered = true
	return nil
}

func (f *FakeHotkey) Unregister()              { f.Registered = false }
func (f *FakeHotkey) Keydown() <-chan struct{} { return f.keydown }

func (f *FakeHotkey) SimKeydown() { f.keydown <- struct{}{} }
