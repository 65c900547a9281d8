package hal

import (
	"strconv"
	"strings"

	"github.com/baechuer/event-rest-api/internal/application/event"
)

// Op is the operation a single-event representation is answering.
type Op int

const (
	OpGet Op = iota
	OpCreate
	OpUpdate
	OpListItem
)

func eventsHref(base string) string { return base + "/events" }

func EventHref(base string, id int64) string {
	return eventsHref(base) + "/" + strconv.FormatInt(id, 10)
}

func ForEvent(base string, id int64, op Op) Links {
	self := EventHref(base, id)
	ls := Links{{Rel: RelSelf, Href: self}}

	switch op {
	case OpCreate:
		ls = append(ls,
			Link{Rel: RelQuery, Href: eventsHref(base)},
			Link{Rel: RelUpdate, Href: self},
			profile("events-create"),
		)
	case OpGet:
		ls = append(ls, profile("events-get"))
	case OpUpdate:
		ls = append(ls, profile("events-update"))
	}
	return ls
}

// ForPage builds collection navigation. Every paging link repeats the
// request's size and sort so that following it keeps the same ordering.
func ForPage(base string, p event.Page) Links {
	last := p.LastIndex()
	n := p.Number()

	ls := Links{{Rel: RelFirst, Href: pageHref(base, 0, p.Request)}}
	if p.HasPrev() {
		ls = append(ls, Link{Rel: RelPrev, Href: pageHref(base, n-1, p.Request)})
	}
	ls = append(ls, Link{Rel: RelSelf, Href: pageHref(base, n, p.Request)})
	if p.HasNext() {
		ls = append(ls, Link{Rel: RelNext, Href: pageHref(base, n+1, p.Request)})
	}
	ls = append(ls,
		Link{Rel: RelLast, Href: pageHref(base, last, p.Request)},
		profile("events-list"),
	)
	return ls
}

// sort properties are whitelisted identifiers so they need no escaping
func pageHref(base string, number int, req event.PageRequest) string {
	var b strings.Builder
	b.WriteString(eventsHref(base))
	b.WriteString("?page=")
	b.WriteString(strconv.Itoa(number))
	b.WriteString("&size=")
	b.WriteString(strconv.Itoa(req.Size))
	for _, o := range req.Sort {
		b.WriteString("&sort=")
		b.WriteString(o.String())
	}
	return b.String()
}
