package core

// ScreenStack holds the modal screens layered over the active tab. The
// top screen owns the keyboard until it pops.
type ScreenStack struct {
	screens []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.screens = append(s.screens, screen)
}

func (s *ScreenStack) Pop() Screen {
	n := len(s.screens)
	if n == 0 {
		return nil
	}
	top := s.screens[n-1]
	s.screens = s.screens[:n-1]
	return top
}

// ReplaceTop swaps the top screen in place, for screens that return a new
// value from their update.
func (s *ScreenStack) ReplaceTop(screen Screen) {
	if len(s.screens) == 0 || screen == nil {
		return
	}
	s.screens[len(s.screens)-1] = screen
}

func (s *ScreenStack) Top() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

func (s *ScreenStack) Len() int {
	return len(s.screens)
}
