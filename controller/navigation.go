package controller

// NavigationController exposes stack-like, read-only views over a chain of
// navigation and push-link presentations rooted at a fixed controller. It
// does not own the chain; the presentations do. Push and Pop are
// conveniences over Present and Dismiss on the chain's tail.
type NavigationController struct {
	ViewController
	root Controller
}

// NewNavigationController builds a container around root. The root is fixed
// for the container's lifetime and adopted as a structural child.
func NewNavigationController(root Controller) *NavigationController {
	n := &NavigationController{root: root}
	n.Extend(n)
	if root != nil {
		n.AddChild(root)
	}
	return n
}

// RootViewController returns the fixed root.
func (n *NavigationController) RootViewController() Controller { return n.root }

// ViewControllers returns the ordered chain starting at the root: each step
// follows the active navigation presentation (a push-link presentation also
// continues the chain). A nested navigation container terminates the walk;
// it owns the rest of the chain itself.
func (n *NavigationController) ViewControllers() []Controller {
	if n.root == nil {
		return nil
	}
	chain := []Controller{n.root}
	cur := n.root
	for {
		rec := cur.ActivePresentation(ModeNavigation)
		if rec == nil {
			rec = cur.ActivePresentation(ModePushLink)
		}
		if rec == nil {
			break
		}
		next := rec.Controller()
		chain = append(chain, next)
		if _, nested := Unwrap(next).(*NavigationController); nested {
			break
		}
		cur = next
	}
	return chain
}

// VisibleViewController returns the chain's tail: the controller the user
// currently sees.
func (n *NavigationController) VisibleViewController() Controller {
	chain := n.ViewControllers()
	if len(chain) == 0 {
		return nil
	}
	return chain[len(chain)-1]
}

// Push presents target on the visible controller in navigation mode.
func (n *NavigationController) Push(target Controller) {
	vis := n.VisibleViewController()
	if vis == nil {
		return
	}
	vis.Present(target, ModeNavigation)
}

// Pop dismisses the visible controller. The root is never popped.
func (n *NavigationController) Pop() {
	chain := n.ViewControllers()
	if len(chain) < 2 {
		return
	}
	chain[len(chain)-1].Dismiss()
}

// ContentView renders whatever the visible controller contributes, so a
// navigation container can itself be presented or hosted directly.
func (n *NavigationController) ContentView() Content {
	return ContentFunc(func(ctx RenderContext) string {
		vis := n.VisibleViewController()
		if vis == nil {
			return ""
		}
		cv := vis.ContentView()
		if cv == nil {
			return ""
		}
		return cv.Render(ctx)
	})
}
