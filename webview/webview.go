// Package webview shows a rendered fractal in the browser. The page is
// served over HTTP and receives the image over a websocket; pressing Escape
// in the page stops the viewer.
package webview

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	fractal "github.com/aueskinj/Mandelbrot-and-Julia-Sets"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

//go:embed static
var static embed.FS

// header is the first message of every websocket session.
type header struct {
	Title  string `json:"title"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Server is a Display serving one frame to any number of browser tabs.
type Server struct {
	addr string

	mu    sync.Mutex
	hdr   header
	frame []byte // PNG

	quit     chan struct{}
	quitOnce sync.Once
}

var _ fractal.Display = (*Server)(nil)

// NewServer returns a viewer that listens on addr when shown.
func NewServer(addr string) *Server {
	return &Server{
		addr: addr,
		quit: make(chan struct{}),
	}
}

// Done is closed once a page asked the viewer to quit.
func (s *Server) Done() <-chan struct{} {
	return s.quit
}

func (s *Server) requestQuit() {
	s.quitOnce.Do(func() { close(s.quit) })
}

// SetFrame replaces the image sent to newly connected pages.
func (s *Server) SetFrame(title string, img *image.RGBA) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png.Encode: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.hdr = header{Title: title, Width: img.Rect.Dx(), Height: img.Rect.Dy()}
	s.frame = buf.Bytes()
	return nil
}

func (s *Server) current() (header, []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hdr, s.frame
}

// Handler serves the page at / and the websocket endpoint at /ws.
func (s *Server) Handler() http.Handler {
	pages, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.websocketHandler)
	mux.Handle("/", http.FileServerFS(pages))
	return mux
}

// Show serves img until a page sends quit or ctx is done.
func (s *Server) Show(ctx context.Context, title string, img *image.RGBA) error {
	if err := s.SetFrame(title, img); err != nil {
		return err
	}

	l, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}
	log.Printf("%s: open http://%s in a browser", title, l.Addr())
	return s.serve(ctx, l)
}

// serve runs the HTTP server on l until a page sends quit or ctx is done.
// Open websocket sessions are ended before it returns.
func (s *Server) serve(ctx context.Context, l net.Listener) error {
	// Shutdown does not track hijacked connections, so the handlers stop on
	// this context instead.
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(l) }()

	select {
	case err := <-errc:
		return fmt.Errorf("http server: %w", err)
	case <-s.Done():
		log.Printf("viewer quit")
	case <-ctx.Done():
		log.Printf("viewer stopped: %v", context.Cause(ctx))
	}

	cancelBase()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// websocketHandler sends the header and the PNG frame, then waits for the
// page to send quit or go away.
func (s *Server) websocketHandler(w http.ResponseWriter, r *http.Request) {
	hdr, frame := s.current()
	if frame == nil {
		http.Error(w, "no frame rendered yet", http.StatusServiceUnavailable)
		return
	}

	c, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	defer c.CloseNow()

	ctx := r.Context()
	if err := wsjson.Write(ctx, c, hdr); err != nil {
		log.Printf("ws %s: write header: %v", r.RemoteAddr, err)
		return
	}
	if err := c.Write(ctx, websocket.MessageBinary, frame); err != nil {
		log.Printf("ws %s: write frame: %v", r.RemoteAddr, err)
		return
	}

	for {
		typ, msg, err := c.Read(ctx)
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			default:
				if ctx.Err() == nil {
					log.Printf("ws %s: read: %v", r.RemoteAddr, err)
				}
			}
			return
		}
		if typ == websocket.MessageText && strings.TrimSpace(string(msg)) == "quit" {
			log.Printf("ws %s: quit", r.RemoteAddr)
			s.requestQuit()
			if err := c.Close(websocket.StatusNormalClosure, "quit"); err != nil {
				log.Printf("ws %s: close: %v", r.RemoteAddr, err)
			}
			return
		}
	}
}
