package px

import "testing"

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	ed, err := NewEditor(16, 16)
	if err != nil {
		t.Fatalf("NewEditor: %v", err)
	}
	return ed
}

func TestEditorGestureCommit(t *testing.T) {
	ed := newTestEditor(t)
	ed.SetTool(ToolPencil)
	ed.SetColor(4)

	ed.PointerDown(2, 2, ButtonPrimary)
	ed.PointerMove(6, 2)
	if !ed.PointerUp(6, 2) {
		t.Fatal("stroke reported no modification")
	}
	if ed.Buffer().At(4, 2) != 4 {
		t.Errorf("cell (4,2) = %d, want 4", ed.Buffer().At(4, 2))
	}
	if !ed.CanUndo() {
		t.Error("no undo checkpoint after a modifying gesture")
	}
}

func TestEditorUndoRedo(t *testing.T) {
	ed := newTestEditor(t)
	ed.SetTool(ToolFill)
	ed.SetColor(9)
	ed.PointerDown(0, 0, ButtonPrimary)
	ed.PointerUp(0, 0)

	if !ed.Undo() {
		t.Fatal("Undo failed")
	}
	if countPixels(ed.Buffer()) != 0 {
		t.Error("undo did not restore the blank buffer")
	}
	if !ed.Redo() {
		t.Fatal("Redo failed")
	}
	if countPixels(ed.Buffer()) != 16*16 {
		t.Error("redo did not reapply the fill")
	}
	if ed.Undo(); ed.Undo() {
		t.Error("second undo succeeded with one checkpoint")
	}
}

// TestEditorNoCheckpointWithoutChange: gestures that modify nothing must
// not push undo checkpoints.
func TestEditorNoCheckpointWithoutChange(t *testing.T) {
	ed := newTestEditor(t)
	ed.SetTool(ToolEraser) // erasing a blank buffer changes nothing
	ed.PointerDown(3, 3, ButtonPrimary)
	if ed.PointerUp(3, 3) {
		t.Error("no-op gesture reported a modification")
	}
	if ed.CanUndo() {
		t.Error("no-op gesture pushed an undo checkpoint")
	}
}

func TestEditorEyedropper(t *testing.T) {
	ed := newTestEditor(t)
	ed.Buffer().Set(5, 5, 13)

	ed.SetTool(ToolEyedropper)
	ed.PointerDown(5, 5, ButtonPrimary)
	if ed.PointerUp(5, 5) {
		t.Error("eyedropper reported a modification")
	}
	if ed.Context().Color != 13 {
		t.Errorf("primary color = %d, want the picked 13", ed.Context().Color)
	}

	ed.PointerDown(5, 5, ButtonSecondary)
	ed.PointerUp(5, 5)
	if ed.Context().AltColor != 13 {
		t.Errorf("alt color = %d, want the picked 13", ed.Context().AltColor)
	}
}

func TestEditorCancelGesture(t *testing.T) {
	ed := newTestEditor(t)
	ed.SetTool(ToolRect)
	ed.SetColor(2)
	ed.PointerDown(1, 1, ButtonPrimary)
	ed.PointerMove(10, 10)
	ed.CancelGesture()
	if countPixels(ed.Buffer()) != 0 {
		t.Error("cancelled preview left pixels behind")
	}
	if ed.CanUndo() {
		t.Error("cancelled gesture pushed an undo checkpoint")
	}
}

func TestEditorSaveLoad(t *testing.T) {
	ed := newTestEditor(t)
	ed.SetTool(ToolBrush)
	ed.SetColor(7)
	ed.SetBrushSize(3)
	ed.PointerDown(8, 8, ButtonPrimary)
	ed.PointerUp(8, 8)

	text := ed.Save()
	other := newTestEditor(t)
	if err := other.Load(text); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !other.Buffer().Equal(ed.Buffer()) {
		t.Error("loaded buffer differs from saved")
	}
	// Loading garbage leaves the editor untouched.
	snapshot := other.Buffer().Clone()
	if err := other.Load("bogus"); err == nil {
		t.Fatal("Load accepted garbage")
	}
	if !other.Buffer().Equal(snapshot) {
		t.Error("failed load modified the buffer")
	}
}

func TestEditorResize(t *testing.T) {
	ed := newTestEditor(t)
	ed.Buffer().Set(3, 3, 5)
	ed.SetSelection(Rect{0, 0, 15, 15})

	if err := ed.Resize(8, 8); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if ed.Buffer().Width() != 8 || ed.Buffer().At(3, 3) != 5 {
		t.Error("resize lost content")
	}
	// The selection is reconciled with the new bounds.
	r, ok := ed.SelectionBounds()
	if !ok || r != (Rect{0, 0, 7, 7}) {
		t.Errorf("selection = %+v (%v), want {0 0 7 7}", r, ok)
	}
	// Out-of-range requests are rejected before any mutation.
	if err := ed.Resize(1, 8); err == nil {
		t.Error("Resize(1, 8) succeeded, want error")
	}
	if ed.Buffer().Width() != 8 {
		t.Error("rejected resize mutated the buffer")
	}
	// Resize is undoable.
	if !ed.Undo() {
		t.Fatal("Undo after resize failed")
	}
	if ed.Buffer().Width() != 16 {
		t.Errorf("undone width = %d, want 16", ed.Buffer().Width())
	}
}

func TestEditorSecondGestureIgnoredWhileActive(t *testing.T) {
	ed := newTestEditor(t)
	ed.SetTool(ToolPencil)
	ed.SetColor(1)
	ed.PointerDown(1, 1, ButtonPrimary)
	ed.PointerDown(9, 9, ButtonPrimary) // ignored
	if ed.Buffer().At(9, 9) != Transparent {
		t.Error("second PointerDown painted mid-gesture")
	}
	ed.PointerUp(1, 1)
}

func TestEditorWithBuffer(t *testing.T) {
	b := mustBuffer(t, [][]uint8{{1, 2}, {3, 4}})
	ed, err := NewEditor(0, 0, WithBuffer(b))
	if err != nil {
		t.Fatalf("NewEditor: %v", err)
	}
	if ed.Buffer() != b {
		t.Error("WithBuffer not adopted")
	}
}

func TestEditorSetters(t *testing.T) {
	ed := newTestEditor(t)
	ed.SetColor(200) // out of range, ignored
	if ed.Context().Color != 1 {
		t.Errorf("color = %d, want the default 1", ed.Context().Color)
	}
	ed.SetBrushSize(-3)
	if ed.Context().Size != 1 {
		t.Errorf("size = %d, want the minimum 1", ed.Context().Size)
	}
	ed.SetBrushSize(1000)
	if ed.Context().Size != MaxSize {
		t.Errorf("size = %d, want the cap %d", ed.Context().Size, MaxSize)
	}
	ed.SetTool(toolCount + 5) // unknown, ignored
	if ed.Tool() != ToolPencil {
		t.Errorf("tool = %v, want pencil", ed.Tool())
	}
}
