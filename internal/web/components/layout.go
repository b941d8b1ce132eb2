package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/yungbote/bookfront/internal/web/themes"
)

type PageConfig struct {
	Title       string
	Description string
	Brand       string
	Theme       themes.Theme
}

const baseStyles = `.perspective-1000{perspective:1000px}
.book-3d{transform:rotateY(-8deg);transition:transform .3s ease}
.book-3d:hover{transform:rotateY(0deg)}
.modal-backdrop{background:rgba(0,0,0,.6)}`

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Brand == "" {
		config.Brand = "Word2Wallet"
	}
	if config.Title == "" {
		config.Title = config.Brand
	}
	if config.Description == "" {
		config.Description = "Get your book from " + config.Brand
	}
	if config.Theme.Name == "" {
		config.Theme = themes.Builtin().Default()
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Script(Src("https://cdn.tailwindcss.com")),
				StyleEl(g.Raw(baseStyles)),
			),
			Body(
				Class(join("min-h-screen", config.Theme.Bg, config.Theme.Text)),
				g.Group(content),
			),
		),
	})
}
