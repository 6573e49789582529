package controller

import "testing"

func TestNavigationChainOrder(t *testing.T) {
	root := newPane("root", "R")
	n1 := newPane("n1", "1")
	n2 := newPane("n2", "2")
	nav := NewNavigationController(root)

	root.Present(n1, ModeNavigation)
	n1.Present(n2, ModeNavigation)

	chain := nav.ViewControllers()
	if len(chain) != 3 {
		t.Fatalf("expected chain of 3, got %d", len(chain))
	}
	for i, want := range []Controller{root, n1, n2} {
		if !sameController(chain[i], want) {
			t.Fatalf("chain[%d] mismatch", i)
		}
	}
	if !sameController(nav.VisibleViewController(), n2) {
		t.Fatalf("visible controller should be the chain tail")
	}
}

func TestNavigationChainFollowsPushLinks(t *testing.T) {
	root := newPane("root", "R")
	linked := newPane("linked", "L")
	nav := NewNavigationController(root)

	root.Present(linked, ModePushLink)

	chain := nav.ViewControllers()
	if len(chain) != 2 || !sameController(chain[1], linked) {
		t.Fatalf("push-link presentations should continue the chain")
	}
}

func TestNestedNavigationTerminatesWalk(t *testing.T) {
	root := newPane("root", "R")
	mid := newPane("mid", "M")
	inner := NewNavigationController(newPane("innerRoot", "IR"))
	beyond := newPane("beyond", "B")

	nav := NewNavigationController(root)
	root.Present(mid, ModeNavigation)
	mid.Present(inner, ModeNavigation)
	inner.RootViewController().Present(beyond, ModeNavigation)

	chain := nav.ViewControllers()
	if len(chain) != 3 {
		t.Fatalf("outer walk should stop at the nested container, got %d entries", len(chain))
	}
	if !sameController(chain[2], inner) {
		t.Fatalf("nested container should be the outer chain's tail")
	}
	if got := inner.ViewControllers(); len(got) != 2 || !sameController(got[1], beyond) {
		t.Fatalf("nested container owns the rest of the chain")
	}
}

func TestPushAndPop(t *testing.T) {
	root := newPane("root", "R")
	nav := NewNavigationController(root)
	next := newPane("next", "N")

	nav.Push(next)
	if !sameController(nav.VisibleViewController(), next) {
		t.Fatalf("push should extend the chain")
	}

	nav.Pop()
	if !sameController(nav.VisibleViewController(), root) {
		t.Fatalf("pop should return to the root")
	}
	nav.Pop() // root is never popped
	if !sameController(nav.VisibleViewController(), root) {
		t.Fatalf("pop on a root-only chain is a no-op")
	}
}

func TestNavigationAdoptsRootAsChild(t *testing.T) {
	root := newPane("root", "R")
	nav := NewNavigationController(root)
	if !sameController(root.Parent(), nav) {
		t.Fatalf("root should be a structural child of the container")
	}
}

func TestNavigationContentRendersVisible(t *testing.T) {
	root := newPane("root", "root view")
	nav := NewNavigationController(root)
	next := newPane("next", "next view")
	nav.Push(next)

	got := nav.ContentView().Render(RenderContext{Width: 40, Height: 10})
	if got != "next view" {
		t.Fatalf("container content should render the visible controller, got %q", got)
	}
}
