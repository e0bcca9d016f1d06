package api

import (
	"bufio"
	"errors"
	"net/http"
	"strconv"

	"github.com/ei-projects/lzss/pkg/lzss"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler serves compression requests. Requests may override Params with
// the "params" query argument ("ei,ej,c").
type Handler struct {
	Params        lzss.Params
	MaxBodySize   int64
	MaxOutputSize int64
	Logger        *logrus.Logger
}

var errOutputTooLarge = errors.New("output exceeds the configured limit")

// limitedWriter fails once more than limit bytes are written.
type limitedWriter struct {
	*lzss.VecWriter
	limit int64
	n     int64
}

func (w *limitedWriter) WriteByte(b byte) error {
	if w.n >= w.limit {
		return errOutputTooLarge
	}
	w.n++
	return w.VecWriter.WriteByte(b)
}

func (h *Handler) newWriter() *limitedWriter {
	return &limitedWriter{VecWriter: lzss.NewVecWriter(0), limit: h.MaxOutputSize}
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// InfoResponse describes the service and its default parameters.
type InfoResponse struct {
	Service     string `json:"service"`
	Params      string `json:"params"`
	WindowSize  int    `json:"window_size"`
	MaxMatch    int    `json:"max_match"`
	MinMatch    int    `json:"min_match"`
	MaxBodySize int64  `json:"max_body_size"`
	MaxOutput   int64  `json:"max_output_size"`
}

func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) HandleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, InfoResponse{
		Service:     "lzss",
		Params:      h.Params.String(),
		WindowSize:  h.Params.N(),
		MaxMatch:    h.Params.F(),
		MinMatch:    h.Params.P() + 1,
		MaxBodySize: h.MaxBodySize,
		MaxOutput:   h.MaxOutputSize,
	})
}

// HandleCompress compresses the raw request body.
func (h *Handler) HandleCompress(c *gin.Context) {
	h.process(c, func(p lzss.Params, r *lzss.CountingReader) ([]byte, error) {
		return lzss.Compress(p, r, h.newWriter())
	})
}

// HandleDecompress decompresses the raw request body.
func (h *Handler) HandleDecompress(c *gin.Context) {
	h.process(c, func(p lzss.Params, r *lzss.CountingReader) ([]byte, error) {
		return lzss.Decompress(p, r, h.newWriter())
	})
}

func (h *Handler) process(c *gin.Context, run func(lzss.Params, *lzss.CountingReader) ([]byte, error)) {
	p := h.Params
	if raw := c.Query("params"); raw != "" {
		var err error
		if p, err = lzss.ParseParams(raw); err != nil {
			abort(c, http.StatusBadRequest, "Invalid params", err)
			return
		}
	}

	body := http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxBodySize)
	reader := &lzss.CountingReader{R: bufio.NewReader(body)}
	out, err := run(p, reader)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abort(c, http.StatusRequestEntityTooLarge, "Body too large", err)
			return
		}
		if errors.Is(err, errOutputTooLarge) {
			abort(c, http.StatusRequestEntityTooLarge, "Output too large", err)
			return
		}
		h.Logger.WithError(err).Warn("Failed to process request body")
		abort(c, http.StatusBadRequest, "Processing failed", err)
		return
	}

	c.Header("X-Lzss-Params", p.String())
	c.Header("X-Original-Size", strconv.FormatInt(reader.Count, 10))
	c.Header("X-Processed-Size", strconv.Itoa(len(out)))
	c.Data(http.StatusOK, "application/octet-stream", out)
}

func abort(c *gin.Context, code int, title string, err error) {
	c.AbortWithStatusJSON(code, ErrorResponse{
		Error:   title,
		Code:    code,
		Message: err.Error(),
	})
}
