package websocket

import _ "embed"

// pageHTML is the single-page recorder UI: microphone capture, the
// preference sidebar and the speaking avatar synced to the reply audio
// element.
//
//go:embed index.html
var pageHTML []byte
