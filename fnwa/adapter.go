package fnwa

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/advdv/bfunc"
	"github.com/cockroachdb/errors"
)

// Output is the response artifact this host produces per invocation. Header
// keys are lower-case.
type Output struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// hostContext adapts one inbound HTTP request into the bfunc host shape.
type hostContext struct {
	req  *hostRequest
	res  hostResponse
	logs bfunc.Logger
}

// NewHostContext builds the opaque invocation context for one inbound request.
// The request body is consumed. Forwarded log lines go to logs.
func NewHostContext(r *http.Request, logs bfunc.Logger) (bfunc.HostContext, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read request body")
	}

	headers := make(map[string]any, len(r.Header))
	for name, vals := range r.Header {
		if len(vals) < 1 {
			continue
		}
		headers[strings.ToLower(name)] = vals[0]
	}

	scheme := r.Header.Get("x-forwarded-proto")
	if scheme == "" {
		scheme = "http"
	}

	host, port := splitHostPort(r.Host, scheme)

	query := make(map[string]any)
	for name, vals := range r.URL.Query() {
		if len(vals) > 0 {
			query[name] = vals[0]
		}
	}

	return &hostContext{
		req: &hostRequest{
			body:     body,
			headers:  headers,
			scheme:   scheme,
			method:   r.Method,
			url:      scheme + "://" + r.Host + r.URL.RequestURI(),
			host:     host,
			port:     port,
			path:     r.URL.Path,
			rawQuery: r.URL.RawQuery,
			query:    query,
		},
		logs: logs,
	}, nil
}

func (c *hostContext) HostRequest() bfunc.HostRequest { return c.req }
func (c *hostContext) HostResponse() bfunc.HostResponse { return c.res }

func (c *hostContext) Log(message string) { c.logs.LogInfo(message) }
func (c *hostContext) Error(message string) { c.logs.LogError(message) }

// splitHostPort splits a Host header into hostname and port, defaulting the
// port by scheme when the header carries none.
func splitHostPort(hostport, scheme string) (string, int) {
	defaultPort := 80
	if scheme == "https" {
		defaultPort = 443
	}

	idx := strings.LastIndex(hostport, ":")
	if idx < 0 {
		return hostport, defaultPort
	}

	port, err := strconv.Atoi(hostport[idx+1:])
	if err != nil {
		return hostport, defaultPort
	}

	return hostport[:idx], port
}

// hostRequest holds the values derived from the inbound request. All getters
// are stable for the lifetime of the invocation.
type hostRequest struct {
	body     []byte
	headers  map[string]any
	scheme   string
	method   string
	url      string
	host     string
	port     int
	path     string
	rawQuery string
	query    map[string]any
}

func (r *hostRequest) BodyText() string { return string(r.body) }

func (r *hostRequest) BodyJSON() any {
	var parsed any
	if err := json.Unmarshal(r.body, &parsed); err != nil {
		return string(r.body)
	}

	return parsed
}

func (r *hostRequest) BodyBinary() []byte { return r.body }
func (r *hostRequest) Headers() map[string]any { return r.headers }
func (r *hostRequest) Scheme() string { return r.scheme }
func (r *hostRequest) Method() string { return r.method }
func (r *hostRequest) URL() string { return r.url }
func (r *hostRequest) Host() string { return r.host }
func (r *hostRequest) Port() int { return r.port }
func (r *hostRequest) Path() string { return r.path }
func (r *hostRequest) QueryString() string { return r.rawQuery }
func (r *hostRequest) Query() map[string]any { return r.query }

// hostResponse builds [*Output] artifacts. It is stateless: every call returns
// a fresh artifact and nothing is buffered.
type hostResponse struct{}

func (hostResponse) Empty() any {
	return &Output{StatusCode: http.StatusNoContent, Headers: map[string]string{}}
}

func (p hostResponse) JSON(body map[string]any, status int) any {
	buf, err := json.Marshal(body)
	if err != nil {
		// unmarshalable values are a caller bug; surface it in the response
		// rather than dropping the invocation on the floor
		return p.Text(err.Error(), http.StatusInternalServerError, nil)
	}

	return &Output{
		StatusCode: status,
		Headers:    map[string]string{"content-type": "application/json"},
		Body:       buf,
	}
}

func (hostResponse) Binary(body []byte, status int) any {
	return &Output{StatusCode: status, Headers: map[string]string{}, Body: body}
}

func (hostResponse) Redirect(url string, status int) any {
	return &Output{StatusCode: status, Headers: map[string]string{"location": url}}
}

func (hostResponse) Text(body string, status int, headers map[string]string) any {
	outHeaders := make(map[string]string, len(headers))
	for key, val := range headers {
		outHeaders[strings.ToLower(key)] = val
	}

	return &Output{StatusCode: status, Headers: outHeaders, Body: []byte(body)}
}

// WriteOutput renders a handler's artifact onto a standard response writer. A
// nil artifact renders as 204 with no body.
func WriteOutput(w http.ResponseWriter, artifact any) error {
	if artifact == nil {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}

	out, ok := artifact.(*Output)
	if !ok {
		return errors.Newf("handler returned %T, expected *fnwa.Output", artifact)
	}

	for key, val := range out.Headers {
		w.Header().Set(key, val)
	}

	w.WriteHeader(out.StatusCode)

	if _, err := w.Write(out.Body); err != nil {
		return errors.Wrap(err, "failed to write response body")
	}

	return nil
}
