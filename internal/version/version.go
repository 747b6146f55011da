package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/archimedix/biblioteca.archimedica.eu/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/archimedix/biblioteca.archimedica.eu/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/archimedix/biblioteca.archimedica.eu/internal/version.Date={{.Date}}
)

// Generator is the name reported in the Atom <generator> element.
const Generator = "atomdoc"
