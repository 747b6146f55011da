package atomdoc

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Build Atom feed documents from manifests"
	MsgRenderShort    = "Render a feed manifest as an Atom document"
	MsgCheckShort     = "Check that an XML file is well-formed"
	MsgTimestampShort = "Convert timestamps"
	MsgFormatShort    = "Format seconds since the epoch as a timestamp"
	MsgParseShort     = "Parse a timestamp into seconds since the epoch"
	MsgIDShort        = "Print a tag: URI for use as an Atom id"
	MsgVersionShort   = "Print version information"

	// Status messages
	MsgWrote        = "Wrote %s\n"
	MsgWellFormed   = "%s is well-formed: <%s>, %d %s\n"
	MsgVersionLine  = "atomdoc version %s\n"
	MsgCommitLine   = "  commit: %s\n"
	MsgBuiltLine    = "  built:  %s\n"
	MsgEntrySingle  = "entry"
	MsgEntryPlural  = "entries"
	MsgNoCommand    = "no command specified"
	MsgErrorPrefix  = "Error: %v"
	MsgCheckSkipped = "Skipping well-formedness check"

	// Error messages
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrBadSeconds   = "%q is not a number of seconds"
	MsgErrReadXML      = "failed to read %s"
	MsgErrWriteOutput  = "failed to write %s"
	MsgErrBadInstant   = "invalid --at value"
	MsgErrBadOffsetArg = "invalid --offset value %q"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default is ./atomdoc.toml when present)"
	MsgFlagOutput  = "Write the document to this file instead of stdout"
	MsgFlagMode    = "Render mode: terse, normal or verbose"
	MsgFlagIndent  = "Indent unit: tab, spaces:N or a literal whitespace string"
	MsgFlagOffset  = "UTC offset for timestamps: Z, local or ±HH:MM"
	MsgFlagTree    = "Print the object tree instead of the XML"
	MsgFlagURI     = "Specific part of the tag URI"
	MsgFlagAt      = "Instant the id is minted for, as a timestamp"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/timestamp-long.txt
	msgTimestampLongRaw string
	MsgTimestampLong    = strings.TrimSpace(msgTimestampLongRaw)

	//go:embed msgs/timestamp-example.txt
	msgTimestampExampleRaw string
	MsgTimestampExample    = strings.TrimRight(msgTimestampExampleRaw, "\n")

	//go:embed msgs/id-long.txt
	msgIDLongRaw string
	MsgIDLong    = strings.TrimSpace(msgIDLongRaw)

	//go:embed msgs/id-example.txt
	msgIDExampleRaw string
	MsgIDExample    = strings.TrimRight(msgIDExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
