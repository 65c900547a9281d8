// Package hal assembles the hypermedia links attached to every resource
// representation.
package hal

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
)

const (
	MediaType = "application/hal+json;charset=UTF-8"

	RelSelf    = "self"
	RelQuery   = "query"
	RelUpdate  = "update"
	RelProfile = "profile"
	RelFirst   = "first"
	RelPrev    = "prev"
	RelNext    = "next"
	RelLast    = "last"
	RelIndex   = "index"
	RelEvents  = "events"

	profileBase = "/docs/index.html#resources-"
)

type Link struct {
	Rel  string
	Href string
}

// Links keeps insertion order and renders as {"rel":{"href":"..."}}.
type Links []Link

func (ls Links) Href(rel string) (string, bool) {
	for _, l := range ls {
		if l.Rel == rel {
			return l.Href, true
		}
	}
	return "", false
}

func (ls Links) Rels() []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.Rel
	}
	return out
}

func (ls Links) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, l := range ls {
		if i > 0 {
			buf.WriteByte(',')
		}
		rel, err := json.Marshal(l.Rel)
		if err != nil {
			return nil, err
		}
		href, err := json.Marshal(l.Href)
		if err != nil {
			return nil, err
		}
		buf.Write(rel)
		buf.WriteString(`:{"href":`)
		buf.Write(href)
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (ls *Links) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	if _, err := dec.Token(); err != nil {
		return err
	}
	out := Links{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		var v struct {
			Href string `json:"href"`
		}
		if err := dec.Decode(&v); err != nil {
			return err
		}
		out = append(out, Link{Rel: tok.(string), Href: v.Href})
	}
	*ls = out
	return nil
}

func profile(anchor string) Link {
	return Link{Rel: RelProfile, Href: profileBase + anchor}
}

// Origin decides the scheme+host prefix of absolute hrefs.
type Origin struct {
	// PublicURL, when set, wins over anything derived from the request.
	PublicURL string
	// TrustForwarded honours X-Forwarded-Proto and X-Forwarded-Host.
	// Enable only behind a proxy that overwrites them.
	TrustForwarded bool
}

// BaseURL returns the link prefix for r.
func (o Origin) BaseURL(r *http.Request) string {
	if o.PublicURL != "" {
		return strings.TrimRight(o.PublicURL, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	host := r.Host
	if !o.TrustForwarded {
		return scheme + "://" + host
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(p, ",")[0]))
	}
	if h := r.Header.Get("X-Forwarded-Host"); h != "" {
		host = strings.TrimSpace(strings.Split(h, ",")[0])
	}
	return scheme + "://" + host
}

// Index links the API root to its collections.
func Index(base string) Links {
	return Links{
		{Rel: RelSelf, Href: base + "/"},
		{Rel: RelEvents, Href: base + "/events"},
	}
}

// ForError points a failed request back to the API root.
func ForError(base string) Links {
	return Links{{Rel: RelIndex, Href: base + "/"}}
}
