// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/run.go
// Summary: The UI event loop: terminal events, executor continuations and
// redraws all run on the calling goroutine.

package texel

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Run drives the app on driver until Quit. The caller's goroutine becomes
// the UI goroutine.
func (a *App) Run(driver ScreenDriver) error {
	if err := driver.Init(); err != nil {
		return err
	}
	defer driver.Fini()
	driver.HideCursor()
	driver.Clear()

	eventChan := make(chan tcell.Event, 10)
	go func() {
		for {
			ev := driver.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	defer a.executor.Shutdown()

	for {
		a.executor.RunUntilIdle()
		if a.Quitting() {
			return nil
		}
		if w := a.active; w != nil && w.NeedsDraw() {
			w.Draw(driver)
		}

		select {
		case ev := <-eventChan:
			a.handleEvent(driver, ev)
		case <-a.executor.Wake():
		case <-ticker.C:
		case <-a.quit:
			log.Printf("App: Event loop finished")
			return nil
		}
	}
}

func (a *App) handleEvent(driver ScreenDriver, ev tcell.Event) {
	w := a.active
	if w == nil {
		return
	}
	switch ev := ev.(type) {
	case *tcell.EventResize:
		driver.Sync()
		w.Refresh()
	case *tcell.EventKey:
		w.HandleKey(ev)
	}
}
