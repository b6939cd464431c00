package door

import (
	"bytes"
	"io"
	"math"
	"testing"

	"floorplan-sim/internal/generator/models"
	"floorplan-sim/internal/generator/sdf"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quiet() Option {
	return WithLogger(log.New(io.Discard))
}

func TestNewModelPose(t *testing.T) {
	edge := models.Edge{Name: "door_1", Length: 1.0, X: 3.5, Y: -2.0, Yaw: 1.5708}
	d := New(edge, quiet())

	model := d.Model()
	require.NotNil(t, model)
	assert.Equal(t, "model", model.Tag)

	name, ok := model.Get("name")
	require.True(t, ok)
	assert.Equal(t, "door_1", name)
	assert.Equal(t, "3.5 -2.0 0 0 0 1.5708", model.FindText("pose"))
}

func TestNewDoesNotValidate(t *testing.T) {
	d := New(models.Edge{Name: "", Length: -1, X: math.NaN(), Y: 0, Yaw: 0}, quiet())

	name, ok := d.Model().Get("name")
	require.True(t, ok)
	assert.Equal(t, "", name)
	assert.Equal(t, "nan 0.0 0 0 0 0.0", d.Model().FindText("pose"))
}

func TestNewLogsDoorName(t *testing.T) {
	var buf bytes.Buffer
	New(models.Edge{Name: "lobby_door"}, WithLogger(log.New(&buf)))

	assert.Contains(t, buf.String(), "lobby_door")
}

func TestAddSlidingSectionEndToEnd(t *testing.T) {
	edge := models.Edge{Name: "door_1", Length: 1.0, X: 3.5, Y: -2.0, Yaw: 1.5708}
	d := New(edge, quiet())
	d.AddSlidingSection("door_1_section_0", 1.0, 0.0, models.Bounds{Lower: 0.0, Upper: 0.9})

	model := d.Model()
	require.Len(t, model.FindAll("link"), 1)
	require.Len(t, model.FindAll("joint"), 1)

	link := model.FindNamed("link", "door_1_section_0")
	require.NotNil(t, link)
	assert.Equal(t, "0.0 0 1.26 0 0 0", link.FindText("pose"))

	joint := model.FindNamed("joint", "door_1_section_0_joint")
	require.NotNil(t, joint)
	typ, _ := joint.Get("type")
	assert.Equal(t, "prismatic", typ)
	assert.Equal(t, "world", joint.FindText("parent"))
	assert.Equal(t, "door_1_section_0", joint.FindText("child"))
	assert.Equal(t, "1 0 0", joint.FindText("axis"))
	assert.Equal(t, "0.0", joint.FindText("axis/limit/lower"))
	assert.Equal(t, "0.9", joint.FindText("axis/limit/upper"))
}

func TestAddSlidingSectionVisualAndCollision(t *testing.T) {
	d := New(models.Edge{Name: "d"}, quiet())
	d.AddSlidingSection("leaf", 2, 0.5, models.Bounds{Lower: -2, Upper: 0})

	link := d.Model().FindNamed("link", "leaf")
	require.NotNil(t, link)
	require.Len(t, link.FindAll("visual"), 1)
	require.Len(t, link.FindAll("collision"), 1)

	visual := link.FindNamed("visual", "leaf")
	collision := link.FindNamed("collision", "leaf")
	require.NotNil(t, visual)
	require.NotNil(t, collision)

	assert.Equal(t, "2 0.03 2.5", visual.FindText("geometry/box/size"))
	assert.Equal(t, visual.FindText("geometry/box/size"), collision.FindText("geometry/box/size"))
	assert.Equal(t, "128 192 210 0.6", visual.FindText("material/ambient"))
	assert.Equal(t, "0x02", collision.FindText("surface/contact/collide_bitmask"))

	assert.Equal(t, "0.5 0 1.26 0 0 0", link.FindText("pose"))
	joint := d.Model().FindNamed("joint", "leaf_joint")
	require.NotNil(t, joint)
	assert.Equal(t, "-2.0", joint.FindText("axis/limit/lower"))
	assert.Equal(t, "0.0", joint.FindText("axis/limit/upper"))
}

func TestAddSlidingSectionTwiceIsIndependent(t *testing.T) {
	d := New(models.Edge{Name: "d", Length: 2}, quiet())
	d.AddSlidingSection("d_left", 1, -0.5, models.Bounds{Lower: -1, Upper: 0})
	d.AddSlidingSection("d_right", 1, 0.5, models.Bounds{Lower: 0, Upper: 1})

	links := d.Model().FindAll("link")
	joints := d.Model().FindAll("joint")
	require.Len(t, links, 2)
	require.Len(t, joints, 2)

	seen := map[*sdf.Element]bool{}
	for _, link := range links {
		link.Walk(func(e *sdf.Element) {
			assert.False(t, seen[e], "node shared between sections: %s", e.Tag)
			seen[e] = true
		})
	}

	// mutating one subtree must not leak into the other
	links[0].Find("visual/geometry/box/size").SetText("9 9 9")
	assert.Equal(t, "1 0.03 2.5", links[1].FindText("visual/geometry/box/size"))
	assert.Equal(t, "d_left", joints[0].FindText("child"))
	assert.Equal(t, "d_right", joints[1].FindText("child"))
}

func TestDuplicateSectionNamesAreAccepted(t *testing.T) {
	d := New(models.Edge{Name: "d"}, quiet())
	d.AddSlidingSection("same", 1, 0, models.Bounds{})
	d.AddSlidingSection("same", 1, 0, models.Bounds{})

	assert.Len(t, d.Model().FindAll("link"), 2)
	assert.Len(t, d.Model().FindAll("joint"), 2)
}

func TestInvertedBoundsPropagate(t *testing.T) {
	d := New(models.Edge{Name: "d"}, quiet())
	d.AddSlidingSection("s", 1, 0, models.Bounds{Lower: 1, Upper: -1})

	joint := d.Model().FindNamed("joint", "s_joint")
	require.NotNil(t, joint)
	assert.Equal(t, "1.0", joint.FindText("axis/limit/lower"))
	assert.Equal(t, "-1.0", joint.FindText("axis/limit/upper"))
}

func TestCustomConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Height = 2.0
	cfg.Thickness = 0.05
	cfg.CollideBitmask = 0x04
	cfg.Color = Color{R: 255, G: 0, B: 0, A: 1}

	d := New(models.Edge{Name: "d"}, WithConfig(cfg), quiet())
	d.AddSlidingSection("s", 1, 0, models.Bounds{})

	link := d.Model().FindNamed("link", "s")
	require.NotNil(t, link)
	assert.Equal(t, "0.0 0 1.01 0 0 0", link.FindText("pose"))
	assert.Equal(t, "1 0.05 2", link.FindText("visual/geometry/box/size"))
	assert.Equal(t, "0x04", link.FindText("collision/surface/contact/collide_bitmask"))
	assert.Equal(t, "255 0 0 1", link.FindText("visual/material/diffuse"))
	assert.Equal(t, cfg, d.Config())
}

func TestBox(t *testing.T) {
	box := Box(2, 0.03, 2.5)
	assert.Equal(t, "box", box.Tag)
	assert.Equal(t, "2 0.03 2.5", box.FindText("size"))
}

func TestDefaultMaterial(t *testing.T) {
	m := DefaultMaterial()
	assert.Equal(t, "material", m.Tag)
	assert.Equal(t, "128 192 210 0.6", m.FindText("ambient"))
	assert.Equal(t, "128 192 210 0.6", m.FindText("diffuse"))
}

func TestCollisionFilter(t *testing.T) {
	f := CollisionFilter()
	assert.Equal(t, "surface", f.Tag)
	assert.Equal(t, "0x02", f.FindText("contact/collide_bitmask"))
}

func TestFragmentsAreFresh(t *testing.T) {
	assert.NotSame(t, DefaultMaterial(), DefaultMaterial())
	assert.NotSame(t, Box(1, 1, 1), Box(1, 1, 1))
}
