package clientdist

import _ "embed"

// LumenJS is the thin client JavaScript bundle.
//
// It is served by the framework at "/_lumen/client.js".
//go:embed lumen.js
var LumenJS []byte
