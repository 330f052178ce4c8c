package lottie

import (
	"encoding/json"
	"fmt"

	"github.com/gogpu/thorvg"
)

// Parse decodes a Lottie/Bodymovin JSON document into a Composition,
// the Go counterpart of LottieParser::parse feeding a LottieComposition.
// Layer "parent"/"ind" references and precomp "refId" asset lookups are
// resolved after the raw decode, mirroring the original's two-pass
// approach (parse, then LottieLoader::prepare wiring parents).
func Parse(data []byte) (*Composition, error) {
	var doc rawComposition
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("lottie: parse: %w", err)
	}

	comp := &Composition{
		Version:    doc.Version,
		Name:       doc.Name,
		Width:      doc.Width,
		Height:     doc.Height,
		StartFrame: doc.InPoint,
		EndFrame:   doc.OutPoint,
		FrameRate:  doc.FrameRate,
		Assets:     make(map[string]*Asset, len(doc.Assets)),
	}

	for _, ra := range doc.Assets {
		asset := &Asset{ID: ra.ID}
		if len(ra.Layers) > 0 {
			asset.Layers = parseLayers(ra.Layers)
		} else if ra.Width > 0 || ra.Height > 0 || ra.ImagePath != "" || ra.Embedded != "" {
			asset.Image = &ImageAsset{Width: ra.Width, Height: ra.Height, Path: ra.ImagePath, Embedded: ra.Embedded}
		}
		comp.Assets[asset.ID] = asset
	}

	comp.Layers = parseLayers(doc.Layers)
	linkParents(comp.Layers)
	resolvePrecomps(comp.Layers, comp.Assets)

	return comp, nil
}

func linkParents(layers []*Layer) {
	byIndex := make(map[int]*Layer, len(layers))
	for _, l := range layers {
		byIndex[l.Index] = l
	}
	for _, l := range layers {
		if l.ParentIndex != 0 {
			l.Parent = byIndex[l.ParentIndex]
		}
	}
}

func resolvePrecomps(layers []*Layer, assets map[string]*Asset) {
	for _, l := range layers {
		if l.Type != LayerPrecomp || l.RefID == "" {
			continue
		}
		if asset, ok := assets[l.RefID]; ok {
			l.Children = asset.Layers
			linkParents(l.Children)
			resolvePrecomps(l.Children, assets)
		}
	}
}

// --- raw JSON mirror structs (field names match the Lottie/Bodymovin
// short-key schema tvgLottieParser.cpp reads token by token) ---

type rawComposition struct {
	Version   string       `json:"v"`
	Name      string       `json:"nm"`
	Width     float64      `json:"w"`
	Height    float64      `json:"h"`
	InPoint   float64      `json:"ip"`
	OutPoint  float64      `json:"op"`
	FrameRate float64      `json:"fr"`
	Layers    []rawLayer   `json:"layers"`
	Assets    []rawAsset   `json:"assets"`
}

type rawAsset struct {
	ID        string     `json:"id"`
	Layers    []rawLayer `json:"layers"`
	Width     int        `json:"w"`
	Height    int        `json:"h"`
	ImagePath string     `json:"u"`
	Embedded  string     `json:"p"`
}

type rawLayer struct {
	Index       int             `json:"ind"`
	ParentIndex int             `json:"parent"`
	Name        string          `json:"nm"`
	Type        int             `json:"ty"`
	RefID       string          `json:"refId"`
	InFrame     float64         `json:"ip"`
	OutFrame    float64         `json:"op"`
	StartFrame  float64         `json:"st"`
	TimeStretch float64         `json:"sr"`
	Width       float64         `json:"w"`
	Height      float64         `json:"h"`
	SolidColor  string          `json:"sc"`
	MatteType   int             `json:"tt"`
	AutoOrient  int             `json:"ao"`
	Hidden      bool            `json:"hd"`
	Transform   *rawTransform   `json:"ks"`
	Shapes      []json.RawMessage `json:"shapes"`
}

func parseLayers(raws []rawLayer) []*Layer {
	layers := make([]*Layer, 0, len(raws))
	for _, rl := range raws {
		l := &Layer{
			Index:       rl.Index,
			ParentIndex: rl.ParentIndex,
			Name:        rl.Name,
			Type:        LayerType(rl.Type),
			RefID:       rl.RefID,
			InFrame:     rl.InFrame,
			OutFrame:    rl.OutFrame,
			StartFrame:  rl.StartFrame,
			TimeStretch: rl.TimeStretch,
			Width:       rl.Width,
			Height:      rl.Height,
			MatteType:   MatteType(rl.MatteType),
			AutoOrient:  rl.AutoOrient != 0,
			Hidden:      rl.Hidden,
		}
		if l.TimeStretch == 0 {
			l.TimeStretch = 1
		}
		if rl.SolidColor != "" {
			l.Color = parseHexColor(rl.SolidColor)
		}
		if rl.Transform != nil {
			l.Transform = rl.Transform.toTransform()
		}
		l.Shapes = parseShapes(rl.Shapes)
		// Hidden layers degrade to Null with no renderable children,
		// matching LottieLayer::prepare's forced-Null behavior.
		if l.Hidden {
			l.Type = LayerNull
			l.Shapes = nil
		}
		layers = append(layers, l)
	}
	return layers
}

func parseHexColor(s string) thorvg.Color {
	if len(s) < 7 || s[0] != '#' {
		return thorvg.Color{}
	}
	hex := func(c byte) uint8 {
		switch {
		case c >= '0' && c <= '9':
			return c - '0'
		case c >= 'a' && c <= 'f':
			return c - 'a' + 10
		case c >= 'A' && c <= 'F':
			return c - 'A' + 10
		}
		return 0
	}
	byte2 := func(hi, lo byte) uint8 { return hex(hi)<<4 | hex(lo) }
	return thorvg.RGB8(byte2(s[1], s[2]), byte2(s[3], s[4]), byte2(s[5], s[6]))
}

type rawTransform struct {
	Position  json.RawMessage `json:"p"`
	Anchor    PointProperty   `json:"a"`
	Scale     PointProperty   `json:"s"`
	Rotation  FloatProperty   `json:"r"`
	RotationZ FloatProperty   `json:"rz"`
	SkewAngle FloatProperty   `json:"sk"`
	SkewAxis  FloatProperty   `json:"sa"`
	Opacity   FloatProperty   `json:"o"`
}

// toTransform decodes the "p" (position) field, which is either a plain
// animated PointProperty or, when split into separate channels
// (checkbox-enabled "Separate Dimensions" in After Effects), an object
// {"s":true,"x":FloatProperty,"y":FloatProperty} - LottieTransform's
// optional `coords` member.
func (rt *rawTransform) toTransform() *Transform {
	t := &Transform{
		Anchor:    rt.Anchor,
		Scale:     rt.Scale,
		Rotation:  rt.Rotation,
		SkewAngle: rt.SkewAngle,
		SkewAxis:  rt.SkewAxis,
		Opacity:   rt.Opacity,
	}
	if t.Scale.isUnset() {
		t.Scale = NewStaticPoint(100, 100)
	}
	if rt.Rotation.value == 0 && len(rt.Rotation.Keyframes) == 0 && rt.RotationZ.value != 0 {
		t.Rotation = rt.RotationZ
	}
	var split struct {
		Split bool          `json:"s"`
		X     FloatProperty `json:"x"`
		Y     FloatProperty `json:"y"`
	}
	if err := json.Unmarshal(rt.Position, &split); err == nil && split.Split {
		t.SplitPosition = true
		t.PositionX = split.X
		t.PositionY = split.Y
		return t
	}
	var pos PointProperty
	_ = json.Unmarshal(rt.Position, &pos)
	t.Position = pos
	return t
}

func parseShapes(raws []json.RawMessage) []Shape {
	shapes := make([]Shape, 0, len(raws))
	for _, raw := range raws {
		if s := parseShape(raw); s != nil {
			shapes = append(shapes, s)
		}
	}
	return shapes
}

func parseShape(raw json.RawMessage) Shape {
	var tag struct {
		Type   string          `json:"ty"`
		Hidden bool            `json:"hd"`
	}
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil
	}
	if tag.Hidden {
		return nil
	}
	switch tag.Type {
	case "gr":
		var g struct {
			Name  string            `json:"nm"`
			Items []json.RawMessage `json:"it"`
		}
		_ = json.Unmarshal(raw, &g)
		return &Group{Name: g.Name, Children: parseShapes(g.Items)}
	case "rc":
		var r struct {
			Position PointProperty `json:"p"`
			Size     PointProperty `json:"s"`
			Radius   FloatProperty `json:"r"`
		}
		_ = json.Unmarshal(raw, &r)
		return &Rect{Position: r.Position, Size: r.Size, Radius: r.Radius}
	case "el":
		var e struct {
			Position PointProperty `json:"p"`
			Size     PointProperty `json:"s"`
		}
		_ = json.Unmarshal(raw, &e)
		return &Ellipse{Position: e.Position, Size: e.Size}
	case "sh":
		var s struct {
			Ks PathProperty `json:"ks"`
		}
		_ = json.Unmarshal(raw, &s)
		return &PathShape{PathSet: s.Ks}
	case "sr":
		var s struct {
			Kind           int           `json:"sy"`
			Position       PointProperty `json:"p"`
			InnerRadius    FloatProperty `json:"ir"`
			OuterRadius    FloatProperty `json:"or"`
			InnerRoundness FloatProperty `json:"is"`
			OuterRoundness FloatProperty `json:"os"`
			Rotation       FloatProperty `json:"r"`
			Points         FloatProperty `json:"pt"`
		}
		_ = json.Unmarshal(raw, &s)
		kind := PolyStarKind(s.Kind)
		if kind == 0 {
			kind = PolyStarStar
		}
		return &PolyStar{
			Kind: kind, Position: s.Position, InnerRadius: s.InnerRadius, OuterRadius: s.OuterRadius,
			InnerRoundness: s.InnerRoundness, OuterRoundness: s.OuterRoundness, Rotation: s.Rotation, Points: s.Points,
		}
	case "rd":
		var s struct {
			Radius FloatProperty `json:"r"`
		}
		_ = json.Unmarshal(raw, &s)
		return &RoundedCorner{Radius: s.Radius}
	case "tm":
		var s struct {
			Start  FloatProperty `json:"s"`
			End    FloatProperty `json:"e"`
			Offset FloatProperty `json:"o"`
			Mode   int           `json:"m"`
		}
		_ = json.Unmarshal(raw, &s)
		return &Trim{Start: s.Start, End: s.End, Offset: s.Offset, Individual: s.Mode == 2}
	case "rp":
		var s struct {
			Copies  FloatProperty `json:"c"`
			Offset  FloatProperty `json:"o"`
			Mode    int           `json:"m"`
			Tr      struct {
				Position     PointProperty `json:"p"`
				Anchor       PointProperty `json:"a"`
				Scale        PointProperty `json:"s"`
				Rotation     FloatProperty `json:"r"`
				StartOpacity FloatProperty `json:"so"`
				EndOpacity   FloatProperty `json:"eo"`
			} `json:"tr"`
		}
		_ = json.Unmarshal(raw, &s)
		scale := s.Tr.Scale
		if scale.isUnset() {
			scale = NewStaticPoint(100, 100)
		}
		return &Repeater{
			Copies: s.Copies, Offset: s.Offset, Position: s.Tr.Position, Anchor: s.Tr.Anchor,
			Scale: scale, Rotation: s.Tr.Rotation, StartOpacity: s.Tr.StartOpacity, EndOpacity: s.Tr.EndOpacity,
			Inorder: s.Mode == 1,
		}
	case "fl":
		var s struct {
			Color    ColorProperty `json:"c"`
			Opacity  FloatProperty `json:"o"`
			Rule     int           `json:"r"`
			Disabled bool          `json:"disabled"`
		}
		_ = json.Unmarshal(raw, &s)
		return &SolidFill{Color: s.Color, Opacity: s.Opacity, Rule: fillRuleFrom(s.Rule), Disabled: s.Disabled}
	case "st":
		var s struct {
			Color      ColorProperty `json:"c"`
			Opacity    FloatProperty `json:"o"`
			Width      FloatProperty `json:"w"`
			Cap        int           `json:"lc"`
			Join       int           `json:"lj"`
			MiterLimit float64       `json:"ml"`
			Dashes     []struct {
				Value FloatProperty `json:"v"`
			} `json:"d"`
			Disabled bool `json:"disabled"`
		}
		_ = json.Unmarshal(raw, &s)
		return &SolidStroke{
			Color: s.Color, Opacity: s.Opacity, Width: s.Width,
			Cap: capFrom(s.Cap), Join: joinFrom(s.Join), MiterLimit: s.MiterLimit,
			Dash: dashFrom(s.Dashes), Disabled: s.Disabled,
		}
	case "gf":
		var s struct {
			gradientRaw
			Rule int `json:"r"`
		}
		_ = json.Unmarshal(raw, &s)
		return &GradientFill{gradientData: s.gradientRaw.toGradientData(), Rule: fillRuleFrom(s.Rule)}
	case "gs":
		var s struct {
			gradientRaw
			Width      FloatProperty `json:"w"`
			Cap        int           `json:"lc"`
			Join       int           `json:"lj"`
			MiterLimit float64       `json:"ml"`
		}
		_ = json.Unmarshal(raw, &s)
		return &GradientStroke{
			gradientData: s.gradientRaw.toGradientData(), Width: s.Width,
			Cap: capFrom(s.Cap), Join: joinFrom(s.Join), MiterLimit: s.MiterLimit,
		}
	case "tr":
		var s rawTransform
		_ = json.Unmarshal(raw, &s)
		return &TransformShape{Transform: *s.toTransform()}
	default:
		return nil
	}
}

type gradientRaw struct {
	Kind    int                   `json:"t"`
	Start   PointProperty         `json:"s"`
	End     PointProperty         `json:"e"`
	Height  FloatProperty         `json:"h"`
	Angle   FloatProperty         `json:"a"`
	Opacity FloatProperty         `json:"o"`
	Stops   GradientStopProperty  `json:"g"`
}

func (g gradientRaw) toGradientData() gradientData {
	kind := GradientKind(g.Kind)
	if kind == 0 {
		kind = GradientLinear
	}
	return gradientData{Kind: kind, Start: g.Start, End: g.End, Height: g.Height, Angle: g.Angle, Opacity: g.Opacity, Stops: g.Stops}
}

func fillRuleFrom(v int) thorvg.FillRule {
	if v == 2 {
		return thorvg.FillRuleEvenOdd
	}
	return thorvg.FillRuleNonZero
}

func capFrom(v int) thorvg.LineCap {
	switch v {
	case 2:
		return thorvg.LineCapRound
	case 3:
		return thorvg.LineCapSquare
	default:
		return thorvg.LineCapButt
	}
}

func joinFrom(v int) thorvg.LineJoin {
	switch v {
	case 2:
		return thorvg.LineJoinRound
	case 3:
		return thorvg.LineJoinBevel
	default:
		return thorvg.LineJoinMiter
	}
}

func dashFrom(entries []struct {
	Value FloatProperty `json:"v"`
}) *thorvg.Dash {
	if len(entries) == 0 {
		return nil
	}
	lengths := make([]float64, 0, len(entries))
	for _, e := range entries {
		lengths = append(lengths, e.Value.Value(0))
	}
	return thorvg.NewDash(lengths...)
}
