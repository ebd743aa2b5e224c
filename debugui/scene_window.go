package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetra/scene"
	"github.com/plus3/tetra/tetra"
)

// SceneWindow lists cell counts per layer.
type SceneWindow struct {
	Scene *scene.Scene
}

func (w *SceneWindow) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(280, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 200), imgui.CondOnce)

	if !imgui.BeginV("Scene", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := w.Scene.Stats()
	imgui.Text(fmt.Sprintf("Cells: %d (%d visible)", stats.Cells, stats.Visible))
	imgui.Text(fmt.Sprintf("Indexed positions: %d", stats.Indexed))
	imgui.Text(fmt.Sprintf("Version: %d", w.Scene.Version()))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SceneLayers", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Layer")
		imgui.TableSetupColumn("Cells")
		imgui.TableSetupColumn("Visible")
		imgui.TableSetupColumn("Slots")
		imgui.TableHeadersRow()

		for form := tetra.Form(0); form < tetra.FormCount; form++ {
			layer := stats.Layers[form]
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(form.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", layer.Cells))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", layer.Visible))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", layer.Slots))
		}
		imgui.EndTable()
	}

	imgui.End()
}
