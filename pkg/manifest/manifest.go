package manifest

// Manifest describes one feed.
type Manifest struct {
	Title        string     `yaml:"title" toml:"title"`
	TitleType    string     `yaml:"title_type" toml:"title_type"`
	ID           string     `yaml:"id" toml:"id"`
	Updated      string     `yaml:"updated" toml:"updated"`
	Subtitle     string     `yaml:"subtitle" toml:"subtitle"`
	Rights       string     `yaml:"rights" toml:"rights"`
	Icon         string     `yaml:"icon" toml:"icon"`
	Logo         string     `yaml:"logo" toml:"logo"`
	Generator    *Generator `yaml:"generator" toml:"generator"`
	Authors      []Person   `yaml:"authors" toml:"authors"`
	Contributors []Person   `yaml:"contributors" toml:"contributors"`
	Links        []Link     `yaml:"links" toml:"links"`
	Categories   []Category `yaml:"categories" toml:"categories"`
	Entries      []Entry    `yaml:"entries" toml:"entries"`
	Comments     Comments   `yaml:"comments" toml:"comments"`
}

// Entry describes one feed entry.
type Entry struct {
	ID           string     `yaml:"id" toml:"id"`
	Title        string     `yaml:"title" toml:"title"`
	TitleType    string     `yaml:"title_type" toml:"title_type"`
	Updated      string     `yaml:"updated" toml:"updated"`
	Published    string     `yaml:"published" toml:"published"`
	Summary      string     `yaml:"summary" toml:"summary"`
	SummaryType  string     `yaml:"summary_type" toml:"summary_type"`
	Content      string     `yaml:"content" toml:"content"`
	ContentType  string     `yaml:"content_type" toml:"content_type"`
	Rights       string     `yaml:"rights" toml:"rights"`
	Authors      []Person   `yaml:"authors" toml:"authors"`
	Contributors []Person   `yaml:"contributors" toml:"contributors"`
	Links        []Link     `yaml:"links" toml:"links"`
	Categories   []Category `yaml:"categories" toml:"categories"`
}

// Person is an author or contributor.
type Person struct {
	Name  string `yaml:"name" toml:"name"`
	Email string `yaml:"email" toml:"email"`
	URI   string `yaml:"uri" toml:"uri"`
}

// Link is an Atom link.
type Link struct {
	Href     string `yaml:"href" toml:"href"`
	Rel      string `yaml:"rel" toml:"rel"`
	Type     string `yaml:"type" toml:"type"`
	Hreflang string `yaml:"hreflang" toml:"hreflang"`
	Title    string `yaml:"title" toml:"title"`
	Length   string `yaml:"length" toml:"length"`
}

// Category is an Atom category.
type Category struct {
	Term   string `yaml:"term" toml:"term"`
	Scheme string `yaml:"scheme" toml:"scheme"`
	Label  string `yaml:"label" toml:"label"`
}

// Generator names the software that produced the feed.
type Generator struct {
	Name    string `yaml:"name" toml:"name"`
	URI     string `yaml:"uri" toml:"uri"`
	Version string `yaml:"version" toml:"version"`
}

// Comments are placed before and after the feed element.
type Comments struct {
	Above []string `yaml:"above" toml:"above"`
	Below []string `yaml:"below" toml:"below"`
}
