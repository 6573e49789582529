package controller

import "testing"

func TestDefaultsBeforeAnyWrite(t *testing.T) {
	vc := &ViewController{}
	if vc.Title() != "" {
		t.Fatalf("default title should be empty")
	}
	if vc.ModalPresentationStyle() != ModeAutomatic {
		t.Fatalf("default style should be automatic")
	}
	if len(vc.Presentations()) != 0 || len(vc.Children()) != 0 {
		t.Fatalf("default lists should be empty")
	}
	if vc.Parent() != nil || vc.PresentingViewController() != nil {
		t.Fatalf("default back-references should be nil")
	}
	if vc.ID() != vc.ID() {
		t.Fatalf("identity should be stable")
	}
}

func TestSetterNotifiesOncePerMutation(t *testing.T) {
	vc := New("t")
	fired := 0
	vc.Changed().Subscribe(func() { fired++ })

	vc.SetTitle("renamed")
	if fired != 1 {
		t.Fatalf("title change should notify once, got %d", fired)
	}
	vc.SetTitle("renamed")
	if fired != 1 {
		t.Fatalf("identical title must not notify, got %d", fired)
	}

	vc.SetModalPresentationStyle(ModeSheet)
	vc.SetModalPresentationStyle(ModeSheet)
	if fired != 2 {
		t.Fatalf("identical style must not notify, got %d", fired)
	}

	vc.SetRepresentedObject(42)
	vc.SetRepresentedObject(42)
	if fired != 3 {
		t.Fatalf("identical represented value must not notify, got %d", fired)
	}
	vc.SetRepresentedObject(nil)
	if fired != 4 {
		t.Fatalf("clearing represented value should notify, got %d", fired)
	}
}

func TestUncomparableRepresentedValueAlwaysNotifies(t *testing.T) {
	vc := New("t")
	fired := 0
	vc.Changed().Subscribe(func() { fired++ })
	rows := []string{"a"}
	vc.SetRepresentedObject(rows) // must not panic on uncomparable type
	vc.SetRepresentedObject(rows)
	if fired != 2 {
		t.Fatalf("uncomparable values count as changed, got %d notifications", fired)
	}
}

func TestIdenticalPresentationListDoesNotNotify(t *testing.T) {
	a := newPane("a", "A")
	b := newPane("b", "B")
	a.Present(b, ModeSheet)

	fired := 0
	a.Changed().Subscribe(func() { fired++ })
	a.cell().setPresentations(a.Presentations())
	if fired != 0 {
		t.Fatalf("element-wise identical list must not notify, got %d", fired)
	}
}

func TestSubscribeCancel(t *testing.T) {
	vc := New("t")
	fired := 0
	cancel := vc.Changed().Subscribe(func() { fired++ })
	vc.SetTitle("x")
	cancel()
	vc.SetTitle("y")
	if fired != 1 {
		t.Fatalf("cancelled subscriber must not fire, got %d", fired)
	}
}
