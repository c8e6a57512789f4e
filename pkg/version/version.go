package version

// Version is the server version reported during initialize.
var Version = "0.1.0"

// ProtocolVersion is the MCP protocol revision this server prefers.
const ProtocolVersion = "2024-11-05"

// SupportedProtocolVersions lists the revisions the server accepts from
// clients, newest first.
var SupportedProtocolVersions = []string{
	"2025-03-26",
	"2024-11-05",
	"2024-10-07",
}
