package game

// Step runs one whole frame: input, then rendering, then periodic stats.
// Backends call it once per tick and present Frame afterwards.
func (g *Game) Step(keys KeyState) {
	frameTimer := g.threading.PerformanceMonitor.StartFrame()
	g.Update(keys)
	g.Render()
	frameTimer.EndFrame()

	g.frameCount++
	g.maybeLogStats()
}

// Update applies one frame of input to the player and the view toggles.
func (g *Game) Update(keys KeyState) {
	actions := g.input.HandleInput(keys, &g.player)

	if actions.CycleDepthMode {
		mode := g.renderer.DepthMode().Next()
		g.renderer.SetDepthMode(mode)
		g.logger.Info("depth mode changed", "mode", mode)
	}
	if actions.ToggleOverlay {
		g.showOverlay = !g.showOverlay
	}
}

// Render clears the framebuffer and draws the view from the player's position.
func (g *Game) Render() {
	g.lastHits = g.renderer.RenderFrame(g.framebuffer, g.player.Position)
}
