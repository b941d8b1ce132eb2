package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type CoverProps struct {
	Title string
	// URL is the API cover; Fallback is shown when it fails to load.
	URL       string
	Fallback  string
	Include3D bool
}

func BookCover(p CoverProps) g.Node {
	wrapper := "relative w-full max-w-md lg:max-w-lg"
	if p.Include3D {
		wrapper = join(wrapper, "perspective-1000")
	}
	if p.URL == "" {
		return Div(Class(wrapper),
			Img(Src(p.Fallback), Alt(p.Title), Width("384"), Height("576"), Class("w-full h-auto rounded-lg shadow-2xl")),
		)
	}
	imgClass := "w-full h-auto rounded-lg shadow-2xl"
	if p.Include3D {
		imgClass = join(imgClass, "book-3d")
	}
	return Div(Class(wrapper),
		Div(Class("relative"),
			Img(
				Src(p.URL), Alt(p.Title), Width("384"), Height("576"), Class(imgClass),
				g.If(p.Fallback != "", g.Attr("onerror", "this.onerror=null;this.src='"+jsString(p.Fallback)+"'")),
				g.Attr("style", "box-shadow:0 25px 50px -12px rgba(0,0,0,.7),0 0 0 1px rgba(0,0,0,.1);height:auto"),
			),
			g.If(p.Include3D, Div(
				Class("absolute inset-0 pointer-events-none"),
				g.Attr("style", "background:linear-gradient(90deg,transparent 90%,rgba(0,0,0,.2) 100%);border-radius:.5rem"),
			)),
		),
	)
}

// jsString escapes a value for a single-quoted JS literal inside an attribute.
func jsString(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '\'', '\\':
			out = append(out, '\\', r)
		case '\n', '\r', '<', '>':
			continue
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
