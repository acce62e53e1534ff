// Package schemas embeds the JSON Schema contracts the service validates
// its inbound requests and outbound events against.
package schemas

import "embed"

//go:embed events requests
var FS embed.FS
