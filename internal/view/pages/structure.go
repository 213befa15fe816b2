package pages

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/zawiya/internal/domain"
	"github.com/nfrund/zawiya/internal/ui/lazy"
	"github.com/nfrund/zawiya/internal/view/components"
)

// StructureProps is the content of the organisation page.
type StructureProps struct {
	Structure domain.Structure
	// LazyImages is true when the browser can observe visibility.
	LazyImages bool
}

// Structure renders the organisation page body.
func Structure(p StructureProps) g.Node {
	s := p.Structure
	return Section(Class("structure-section"),
		Div(Class("container"),
			Div(Class("section-header"),
				H2(Class("section-title"), g.Text("الهيكل التنظيمي")),
				P(Class("section-subtitle"), g.Text("القائمون على المدرسة الإلكترونية")),
			),
			memberGroup("leadership", "القيادة", s.Leadership, p.LazyImages),
			memberGroup("administration", "الإدارة", s.Administration, p.LazyImages),
			memberGroup("teachers", "هيئة التدريس", s.Teachers, p.LazyImages),
			memberGroup("technical", "الفريق التقني", s.Technical, p.LazyImages),
		),
	)
}

func memberGroup(id, title string, members []domain.Member, observer bool) g.Node {
	if len(members) == 0 {
		return nil
	}
	images := make([]*lazy.Image, len(members))
	for i, m := range members {
		images[i] = &lazy.Image{ID: id + "-img-" + strconv.Itoa(i), DataSrc: m.Image}
	}
	components.LazyImages(observer, images...)

	return Div(ID(id), Class("structure-group"),
		H3(Class("structure-group-title"), g.Text(title)),
		Div(Class("members-grid"),
			g.Map(indexed(members), func(im indexedMember) g.Node {
				m := im.m
				return Div(Class("member-card"),
					g.If(m.Image != "", components.Image(images[im.i], m.Name, "member-image")),
					g.If(m.Image == "", Div(Class("member-avatar"), I(Class("fas fa-user")))),
					H4(g.Text(m.Name)),
					P(Class("member-position"), g.Text(m.Position)),
					g.If(m.Description != "", P(Class("member-description"), g.Text(m.Description))),
					g.If(m.Specialization != "", P(Class("member-specialization"), g.Text(m.Specialization))),
					g.If(m.Experience != "", P(Class("member-experience"), g.Text(m.Experience))),
					g.If(m.Email != "", A(Href("mailto:"+m.Email), I(Class("fas fa-envelope")), g.Text(" "+m.Email))),
				)
			}),
		),
	)
}
