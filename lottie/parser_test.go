package lottie

import (
	"encoding/json"
	"testing"
)

const sampleDoc = `{
	"v": "5.5.2",
	"nm": "sample",
	"w": 200,
	"h": 100,
	"ip": 0,
	"op": 30,
	"fr": 30,
	"layers": [
		{
			"ind": 1,
			"ty": 4,
			"nm": "shape layer",
			"ip": 0,
			"op": 30,
			"st": 0,
			"sr": 1,
			"ks": {
				"p": {"a":0,"k":[100,50]},
				"a": {"a":0,"k":[0,0]},
				"s": {"a":0,"k":[100,100]},
				"r": {"a":0,"k":0},
				"o": {"a":0,"k":100}
			},
			"shapes": [
				{
					"ty": "rc",
					"p": {"a":0,"k":[0,0]},
					"s": {"a":0,"k":[40,40]},
					"r": {"a":0,"k":0}
				},
				{
					"ty": "fl",
					"c": {"a":0,"k":[1,0,0]},
					"o": {"a":0,"k":100},
					"r": 1
				}
			]
		}
	],
	"assets": []
}`

func TestParseBasicDocument(t *testing.T) {
	comp, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if comp.Width != 200 || comp.Height != 100 {
		t.Errorf("size = %vx%v, want 200x100", comp.Width, comp.Height)
	}
	if comp.FrameRate != 30 {
		t.Errorf("FrameRate = %v, want 30", comp.FrameRate)
	}
	if comp.EndFrame != 30 {
		t.Errorf("EndFrame = %v, want 30", comp.EndFrame)
	}
	if len(comp.Layers) != 1 {
		t.Fatalf("len(Layers) = %v, want 1", len(comp.Layers))
	}
	layer := comp.Layers[0]
	if layer.Type != LayerShape {
		t.Errorf("layer.Type = %v, want LayerShape", layer.Type)
	}
	if len(layer.Shapes) != 2 {
		t.Fatalf("len(Shapes) = %v, want 2", len(layer.Shapes))
	}
	rect, ok := layer.Shapes[0].(*Rect)
	if !ok {
		t.Fatalf("Shapes[0] = %T, want *Rect", layer.Shapes[0])
	}
	size := rect.Size.Value(0)
	if size.X != 40 || size.Y != 40 {
		t.Errorf("rect size = %+v, want (40,40)", size)
	}
	fill, ok := layer.Shapes[1].(*SolidFill)
	if !ok {
		t.Fatalf("Shapes[1] = %T, want *SolidFill", layer.Shapes[1])
	}
	c := fill.Color.Value(0)
	if c.R != 255 {
		t.Errorf("fill color = %+v, want pure red", c)
	}
}

func TestParseHexColor(t *testing.T) {
	c := parseHexColor("#ff0080")
	if c.R != 0xff || c.G != 0x00 || c.B != 0x80 {
		t.Errorf("parseHexColor = %+v, want (ff,00,80)", c)
	}
}

func TestParseTransformSplitPosition(t *testing.T) {
	raw := []byte(`{
		"p": {"s":true,"x":{"a":0,"k":10},"y":{"a":0,"k":20}},
		"a": {"a":0,"k":[0,0]},
		"s": {"a":0,"k":[100,100]},
		"r": {"a":0,"k":0},
		"o": {"a":0,"k":100}
	}`)
	var rt rawTransform
	if err := json.Unmarshal(raw, &rt); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	tr := rt.toTransform()
	if !tr.SplitPosition {
		t.Fatal("expected split position")
	}
	if tr.PositionX.Value(0) != 10 || tr.PositionY.Value(0) != 20 {
		t.Errorf("split position = (%v,%v), want (10,20)", tr.PositionX.Value(0), tr.PositionY.Value(0))
	}
}

func TestParseTransformDefaultScale(t *testing.T) {
	raw := []byte(`{
		"p": {"a":0,"k":[0,0]},
		"a": {"a":0,"k":[0,0]},
		"r": {"a":0,"k":0},
		"o": {"a":0,"k":100}
	}`)
	var rt rawTransform
	if err := json.Unmarshal(raw, &rt); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	tr := rt.toTransform()
	scale := tr.Scale.Value(0)
	if scale.X != 100 || scale.Y != 100 {
		t.Errorf("default scale = %+v, want (100,100)", scale)
	}
}

func TestFillRuleCapJoinFrom(t *testing.T) {
	if fillRuleFrom(1) == fillRuleFrom(2) {
		t.Error("fillRuleFrom(1) and fillRuleFrom(2) should differ")
	}
	if capFrom(2) == capFrom(3) {
		t.Error("capFrom(2) and capFrom(3) should differ")
	}
	if joinFrom(2) == joinFrom(3) {
		t.Error("joinFrom(2) and joinFrom(3) should differ")
	}
}

func TestParseShapeGroupNesting(t *testing.T) {
	raw := json.RawMessage(`{
		"ty": "gr",
		"nm": "g",
		"it": [
			{"ty":"el","p":{"a":0,"k":[0,0]},"s":{"a":0,"k":[10,10]}}
		]
	}`)
	s := parseShape(raw)
	g, ok := s.(*Group)
	if !ok {
		t.Fatalf("parseShape = %T, want *Group", s)
	}
	if len(g.Children) != 1 {
		t.Fatalf("len(Children) = %v, want 1", len(g.Children))
	}
	if _, ok := g.Children[0].(*Ellipse); !ok {
		t.Errorf("Children[0] = %T, want *Ellipse", g.Children[0])
	}
}

func TestParseShapeHiddenSkipped(t *testing.T) {
	raw := json.RawMessage(`{"ty":"rc","hd":true}`)
	if s := parseShape(raw); s != nil {
		t.Errorf("hidden shape should parse to nil, got %T", s)
	}
}

func TestLinkParentsAndPrecomps(t *testing.T) {
	comp, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// No parents in the sample doc; ensure the link pass doesn't panic
	// and leaves the single layer unparented.
	if comp.Layers[0].Parent != nil {
		t.Error("layer with parent index 0 should have no Parent")
	}
}
