package neopop

import (
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TextCase transforms a title before it is drawn.
type TextCase uint8

const (
	CaseNone TextCase = iota
	CaseUpper
	CaseLower
	CaseTitle
)

// Layout constants of ContentContainer.
const (
	imageBoxSize     = 20.0
	contentSpacing   = 8.0
	DefaultTitleSize = 14.0
	disabledAlpha    = 0.6
)

// ContentModel configures a ContentContainer: a title between an optional
// left and right image, centered on the button face.
type ContentModel struct {
	Title      string
	TitleColor gg.RGBA
	// Face draws the title. Nil uses Go Regular at TitleSize.
	Face      text.Face
	TitleSize float64
	Case      TextCase
	// Language selects the casing rules; the zero value is language.Und.
	Language language.Tag

	LeftImage      image.Image
	LeftImageTint  *gg.RGBA
	RightImage     image.Image
	RightImageTint *gg.RGBA
	// LeftImageScale and RightImageScale widen the 20-point image boxes.
	// Zero means 1.
	LeftImageScale  float64
	RightImageScale float64

	// ContentInset is the minimum space left and right of the content.
	ContentInset float64
}

// NewContentModel returns a model with the given title and default values
// elsewhere.
func NewContentModel(title string) ContentModel {
	return ContentModel{
		Title:           title,
		TitleColor:      gg.Black,
		TitleSize:       DefaultTitleSize,
		LeftImageScale:  1,
		RightImageScale: 1,
		ContentInset:    DefaultContentInset,
	}
}

// DisplayTitle returns the title with the case transform applied.
func (m ContentModel) DisplayTitle() string {
	switch m.Case {
	case CaseUpper:
		return cases.Upper(m.Language).String(m.Title)
	case CaseLower:
		return cases.Lower(m.Language).String(m.Title)
	case CaseTitle:
		return cases.Title(m.Language).String(m.Title)
	}
	return m.Title
}

func scaleOr1(s float64) float64 {
	if s <= 0 {
		return 1
	}
	return s
}

// ContentLayout is the placement of the parts of a ContentContainer.
// Absent parts have empty rectangles.
type ContentLayout struct {
	Left, Title, Right Rect
}

// LayoutContent arranges the parts of m horizontally inside r, centered
// and spaced 8 points apart. titleW and titleH are the measured title
// size.
func LayoutContent(r Rect, m ContentModel, titleW, titleH float64) ContentLayout {
	var parts []*Rect
	var l ContentLayout
	if m.LeftImage != nil {
		l.Left = Rect{Width: imageBoxSize * scaleOr1(m.LeftImageScale), Height: imageBoxSize}
		parts = append(parts, &l.Left)
	}
	if m.Title != "" {
		l.Title = Rect{Width: titleW, Height: titleH}
		parts = append(parts, &l.Title)
	}
	if m.RightImage != nil {
		l.Right = Rect{Width: imageBoxSize * scaleOr1(m.RightImageScale), Height: imageBoxSize}
		parts = append(parts, &l.Right)
	}
	if len(parts) == 0 {
		return l
	}

	total := contentSpacing * float64(len(parts)-1)
	for _, p := range parts {
		total += p.Width
	}
	x := r.X + (r.Width-total)/2
	x = math.Max(x, r.X+m.ContentInset)
	cy := r.Y + r.Height/2
	for _, p := range parts {
		p.X = x
		p.Y = cy - p.Height/2
		x += p.Width + contentSpacing
	}
	return l
}

var (
	defaultFontOnce   sync.Once
	defaultFontSource *text.FontSource
	defaultFontErr    error
)

func defaultFont() (*text.FontSource, error) {
	defaultFontOnce.Do(func() {
		defaultFontSource, defaultFontErr = text.NewFontSource(goregular.TTF)
	})
	return defaultFontSource, defaultFontErr
}

// ContentContainer is the default Container: a title and up to two images.
// Its opacity drops to 0.6 while the button is disabled.
type ContentContainer struct {
	model      ContentModel
	configured bool
	title      string
	face       text.Face
	left       *gg.ImageBuf
	right      *gg.ImageBuf
	alpha      float64
}

// NewContentContainer returns an empty container.
func NewContentContainer() *ContentContainer {
	return &ContentContainer{alpha: 1}
}

// Configure applies m. It prepares the title face and the tinted images.
func (c *ContentContainer) Configure(m ContentModel) error {
	face := m.Face
	if face == nil && m.Title != "" {
		src, err := defaultFont()
		if err != nil {
			return fmt.Errorf("neopop: load default font: %w", err)
		}
		size := m.TitleSize
		if size <= 0 {
			size = DefaultTitleSize
		}
		var opts []text.FaceOption
		if m.Language != language.Und {
			opts = append(opts, text.WithLanguage(m.Language.String()))
		}
		face = src.Face(size, opts...)
	}
	c.model = m
	c.title = m.DisplayTitle()
	c.face = face
	c.left = prepareImage(m.LeftImage, m.LeftImageTint, imageBoxSize*scaleOr1(m.LeftImageScale), imageBoxSize)
	c.right = prepareImage(m.RightImage, m.RightImageTint, imageBoxSize*scaleOr1(m.RightImageScale), imageBoxSize)
	c.configured = true
	return nil
}

// Model returns the applied model.
func (c *ContentContainer) Model() ContentModel { return c.model }

// Alpha returns the container's opacity.
func (c *ContentContainer) Alpha() float64 { return c.alpha }

// UpdateOnStateChange fades the content while disabled.
func (c *ContentContainer) UpdateOnStateChange(s State) {
	switch {
	case s == StateNormal:
		c.alpha = 1
	case s.IsDisabled():
		c.alpha = disabledAlpha
	}
}

// Layout returns the placement of the content in r.
func (c *ContentContainer) Layout(r Rect) ContentLayout {
	var w, h float64
	if c.face != nil && c.title != "" {
		w = c.face.Advance(c.title)
		m := c.face.Metrics()
		h = m.Ascent + m.Descent
	}
	m := c.model
	m.Title = c.title
	return LayoutContent(r, m, w, h)
}

// Draw paints the content centered in r.
func (c *ContentContainer) Draw(dc *gg.Context, r Rect) error {
	if !c.configured {
		return nil
	}
	l := c.Layout(r)
	if c.alpha < 1 {
		dc.PushLayer(gg.BlendNormal, c.alpha)
		defer dc.PopLayer()
	}
	if c.left != nil {
		drawImageBox(dc, c.left, l.Left)
	}
	if c.face != nil && c.title != "" {
		dc.SetFont(c.face)
		dc.SetColor(c.model.TitleColor.Color())
		dc.DrawStringAnchored(c.title, l.Title.X+l.Title.Width/2, l.Title.Y+l.Title.Height/2, 0.5, 0.5)
	}
	if c.right != nil {
		drawImageBox(dc, c.right, l.Right)
	}
	return nil
}

func drawImageBox(dc *gg.Context, img *gg.ImageBuf, r Rect) {
	dc.DrawImageEx(img, gg.DrawImageOptions{
		X:         r.X,
		Y:         r.Y,
		DstWidth:  r.Width,
		DstHeight: r.Height,
		Opacity:   1,
	})
}

// prepareImage scales src to fit a w×h box, keeping its aspect ratio, and
// paints it with tint when one is given, using src only as a mask.
func prepareImage(src image.Image, tint *gg.RGBA, w, h float64) *gg.ImageBuf {
	if src == nil {
		return nil
	}
	return gg.ImageBufFromImage(fitImage(src, tint, int(math.Ceil(w)), int(math.Ceil(h))))
}

func fitImage(src image.Image, tint *gg.RGBA, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	sb := src.Bounds()
	if sb.Empty() || w <= 0 || h <= 0 {
		return dst
	}
	scale := math.Min(float64(w)/float64(sb.Dx()), float64(h)/float64(sb.Dy()))
	fw, fh := int(math.Round(float64(sb.Dx())*scale)), int(math.Round(float64(sb.Dy())*scale))
	x0, y0 := (w-fw)/2, (h-fh)/2
	target := image.Rect(x0, y0, x0+fw, y0+fh)

	if tint == nil {
		draw.CatmullRom.Scale(dst, target, src, sb, draw.Over, nil)
		return dst
	}
	mask := image.NewAlpha(target)
	draw.CatmullRom.Scale(mask, target, src, sb, draw.Src, nil)
	draw.DrawMask(dst, target, image.NewUniform(tint.Color()), image.Point{}, mask, target.Min, draw.Over)
	return dst
}
