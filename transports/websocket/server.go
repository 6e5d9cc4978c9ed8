// Package websocket serves the browser front end: an HTTP page that
// records microphone audio plus a WebSocket that carries recordings in
// and turn events out. One connection owns one session.
package websocket

import (
	"context"
	"encoding/base64"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"voicechat/config"
	"voicechat/core"
	"voicechat/memory"
	"voicechat/pipeline"
	"voicechat/playback"
	"voicechat/protocol"
	"voicechat/session"
)

// TurnRunner runs one conversation turn. Satisfied by *pipeline.Pipeline.
type TurnRunner interface {
	Run(ctx context.Context, in pipeline.Input) *pipeline.Turn
}

// Options configure the Server.
type Options struct {
	// Runner executes turns. Nil when the configuration gate failed.
	Runner TurnRunner
	// Gate is the configuration report; when not OK the server sends
	// config_error on connect and refuses recordings.
	Gate config.Report
	// Store backs each connection's session preferences.
	Store *memory.Store
	// Logger defaults to the global logger.
	Logger *core.Logger
}

// Server handles the page and WebSocket endpoints.
type Server struct {
	opts     Options
	logger   *core.Logger
	upgrader websocket.Upgrader
}

// NewServer returns a Server over the given options.
func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = core.GetLogger()
	}
	return &Server{
		opts:   opts,
		logger: logger.With(map[string]interface{}{"component": "websocket"}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1 << 16,
			WriteBufferSize: 1 << 16,
			// The page is served from this same process.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Routes registers the page and socket handlers on mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/", s.handlePage)
	mux.HandleFunc("/ws", s.handleSocket)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(pageHTML)
}

// conn wraps one client connection with its session state.
type conn struct {
	ws   *websocket.Conn
	sess *session.Session
	mu   sync.Mutex // protects writes

	// awaitingAudio is set after an audio header; the next binary
	// frame is the recording.
	awaitingAudio bool
}

func (c *conn) send(msgType protocol.MessageType, payload interface{}) error {
	data, err := protocol.Marshal(msgType, payload)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err.Error())
		return
	}
	defer ws.Close()

	// Configuration gate: without complete credentials for all three
	// capabilities nothing runs. The client gets the field names.
	if !s.opts.Gate.OK() {
		c := &conn{ws: ws}
		missing := make(map[string][]string, len(s.opts.Gate))
		for capability, fields := range s.opts.Gate {
			missing[string(capability)] = fields
		}
		c.send(protocol.MsgConfigError, protocol.ConfigErrorPayload{Missing: missing})
		return
	}

	c := &conn{
		ws:   ws,
		sess: session.New(s.opts.Store, s.logger),
	}
	s.logger.Info("client connected", "remote", ws.RemoteAddr().String())

	for {
		messageType, data, err := ws.ReadMessage()
		if err != nil {
			s.logger.Info("client disconnected", "error", err.Error())
			return
		}

		switch messageType {
		case websocket.BinaryMessage:
			if !c.awaitingAudio {
				s.logger.Warn("unexpected binary frame, dropping", "bytes", len(data))
				continue
			}
			c.awaitingAudio = false
			s.runTurn(r.Context(), c, data)
		case websocket.TextMessage:
			if err := s.handleMessage(c, data); err != nil {
				s.logger.Warn("bad client message", "error", err.Error())
			}
		}
	}
}

func (s *Server) handleMessage(c *conn, data []byte) error {
	msgType, raw, err := protocol.Unmarshal(data)
	if err != nil {
		return err
	}

	switch msgType {
	case protocol.MsgAudio:
		// Header only; the recording follows as a binary frame.
		c.awaitingAudio = true

	case protocol.MsgSavePreferences:
		p, err := protocol.UnmarshalPayload[protocol.SavePreferencesPayload](raw)
		if err != nil {
			return err
		}
		c.sess.SavePreferences(memory.Preferences{
			PreferredName: p.PreferredName,
			SpeakStyle:    memory.Style(p.SpeakStyle),
		})
		saved := c.sess.Preferences()
		return c.send(protocol.MsgPreferencesSaved, protocol.PreferencesSavedPayload{
			PreferredName: saved.PreferredName,
			SpeakStyle:    string(saved.SpeakStyle),
		})

	case protocol.MsgSetVoice:
		p, err := protocol.UnmarshalPayload[protocol.SetVoicePayload](raw)
		if err != nil {
			return err
		}
		c.sess.SetVoice(p.Voice)

	case protocol.MsgSetAutoLanguage:
		p, err := protocol.UnmarshalPayload[protocol.SetAutoLanguagePayload](raw)
		if err != nil {
			return err
		}
		c.sess.SetAutoDetectLanguage(p.Enabled)

	case protocol.MsgPlayback:
		p, err := protocol.UnmarshalPayload[protocol.PlaybackPayload](raw)
		if err != nil {
			return err
		}
		s.handlePlayback(c.sess.Indicator, p)
	}
	return nil
}

func (s *Server) handlePlayback(ind *playback.Indicator, p protocol.PlaybackPayload) {
	switch p.Event {
	case "playing":
		ind.HandlePlaying()
	case "ended":
		ind.HandleEnded()
	case "paused":
		ind.HandlePaused(
			time.Duration(p.Position*float64(time.Second)),
			time.Duration(p.Duration*float64(time.Second)),
		)
	}
}

// runTurn executes one recording and streams the results back in the
// order the original UI revealed them: transcript, detected language,
// reply text, then audio or a degraded-synthesis diagnostic.
func (s *Server) runTurn(ctx context.Context, c *conn, audio []byte) {
	turn := s.opts.Runner.Run(ctx, pipeline.Input{
		Audio:              audio,
		Preferences:        c.sess.Preferences(),
		Voice:              c.sess.Voice(),
		AutoDetectLanguage: c.sess.AutoDetectLanguage(),
	})

	if turn.Transcript != "" {
		c.send(protocol.MsgTranscript, protocol.TranscriptPayload{
			TurnID: turn.ID,
			Text:   turn.Transcript,
		})
		c.send(protocol.MsgDetectedLanguage, protocol.DetectedLanguagePayload{
			TurnID:   turn.ID,
			Language: string(turn.Language),
			Display:  turn.Language.DisplayName(),
		})
	}
	if turn.ReplyText != "" {
		c.send(protocol.MsgReply, protocol.ReplyPayload{
			TurnID: turn.ID,
			Text:   turn.ReplyText,
		})
	}
	if turn.State == pipeline.StateDone {
		c.send(protocol.MsgReplyAudio, protocol.ReplyAudioPayload{
			TurnID: turn.ID,
			Audio:  base64.StdEncoding.EncodeToString(turn.ReplyAudio),
			Label:  "AI speaking…",
		})
	}
	if turn.Err != nil {
		c.send(protocol.MsgTurnError, protocol.TurnErrorPayload{
			TurnID:      turn.ID,
			Stage:       string(turn.Err.Stage),
			Fatal:       turn.Err.Fatal(),
			Message:     turn.Err.Message,
			Hint:        turn.Err.Hint,
			Diagnostics: turn.Err.Diagnostics,
		})
	}
}
