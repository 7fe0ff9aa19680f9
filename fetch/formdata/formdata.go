package formdata

// Entry is a single form entry. Plain entries carry their value in Value;
// file entries additionally carry Filename and ContentType.
type Entry struct {
	Name        string
	Value       []byte
	Filename    string
	ContentType string
}

func (e Entry) IsFile() bool {
	return e.Filename != ""
}

// FormData is an ordered form entry list.
type FormData struct {
	entries []Entry
}

func New() *FormData {
	return new(FormData)
}

func (f *FormData) Append(name string, value string) {
	f.entries = append(f.entries, Entry{Name: name, Value: []byte(value)})
}

func (f *FormData) AppendFile(name string, filename string, contentType string, data []byte) {
	f.entries = append(f.entries, Entry{Name: name, Value: data, Filename: filename, ContentType: contentType})
}

// Get returns the first entry with the given name.
func (f *FormData) Get(name string) (Entry, bool) {
	for _, entry := range f.entries {
		if entry.Name == name {
			return entry, true
		}
	}
	return Entry{}, false
}

func (f *FormData) GetAll(name string) []Entry {
	var entries []Entry
	for _, entry := range f.entries {
		if entry.Name == name {
			entries = append(entries, entry)
		}
	}
	return entries
}

func (f *FormData) Entries() []Entry {
	return f.entries
}

func (f *FormData) Len() int {
	return len(f.entries)
}
