// Command retroui-demo showcases the retroui widget set: a fullscreen
// panel split between a tabbed pane and a scrollable document, plus a
// modal dialog opened from a button.
//
// Ctrl+Tab / Ctrl+N cycle focus, Ctrl+Q quits.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/grindlemire/retroui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "retroui-demo:", err)
		os.Exit(1)
	}
}

func run() error {
	term, err := retroui.NewTcellTerminal()
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Fini()

	app := retroui.NewApp(term)
	app.PushPanel(mainPanel(app))

	if list := firstListView(app); list != nil {
		app.SetFocus(list)
	}
	return app.Run(context.Background(), term)
}

func mainPanel(app *retroui.App) *retroui.Panel {
	split := retroui.NewSplitView()
	split.SetVertical(false)
	split.SetRatio(0.35)
	_ = split.SetFirst(sidebarTabs(app))
	_ = split.SetSecond(documentPane())

	panel := retroui.NewPanel()
	panel.SetFullscreen(true)
	panel.SetTitle("retroui demo")
	panel.SetBorder(true)
	panel.SetRoot(split)
	panel.SetOnKey(func(ev retroui.KeyEvent) bool {
		if ev.Is(retroui.KeyEscape) {
			app.Quit()
			return true
		}
		return false
	})
	return panel
}

func sidebarTabs(app *retroui.App) retroui.View {
	list := retroui.NewListView([]string{
		"alpha", "bravo", "charlie", "delta", "echo",
		"foxtrot", "golf", "hotel", "india", "juliett",
	})
	list.OnActivate = func(_ int, item string) {
		app.PushPanel(dialogPanel(app, "Selected "+item))
	}

	volume := retroui.NewSlider()
	volume.SetDivisions(10)
	volume.SetValue(0.5)

	notes := retroui.NewTextField()
	notes.SetText("scratch space\ntype here")

	controls := retroui.NewAccordionView()
	_ = controls.AddSection("Volume", volume)
	_ = controls.AddSection("Shade", gradientSwatch())
	_ = controls.AddSection("Notes", notes)

	tabs := retroui.NewTabView()
	_ = tabs.AddTab("Items", list)
	_ = tabs.AddTab("Controls", controls)
	return tabs
}

func documentPane() retroui.View {
	var lines []string
	for i := 1; i <= 60; i++ {
		lines = append(lines, fmt.Sprintf("%3d  %s", i, strings.Repeat("the quick brown fox ", 3)))
	}
	doc := retroui.NewTextView(strings.Join(lines, "\n"))

	scroll := retroui.NewScrollView()
	_ = scroll.SetDocument(doc)

	box := retroui.NewBox()
	box.SetTitle("Document")
	_ = box.SetContent(scroll)
	return box
}

func gradientSwatch() retroui.View {
	fill := retroui.NewFillView('█', retroui.NewStyle())
	fill.SetGradient(&retroui.Gradient{
		From:      retroui.RGBColor(40, 10, 90),
		To:        retroui.RGBColor(230, 120, 30),
		Direction: retroui.GradientHorizontal,
	})
	return fill
}

func dialogPanel(app *retroui.App, message string) *retroui.Panel {
	ok := retroui.NewButton("OK")
	ok.OnPress = func(bool) {
		app.PopPanel()
	}

	split := retroui.NewSplitView()
	split.SetDivider(false)
	split.SetRatio(0.6)
	_ = split.SetFirst(retroui.NewTextView(message))
	_ = split.SetSecond(ok)

	panel := retroui.NewPanel()
	panel.SetModal(true)
	panel.SetTitle("Notice")
	panel.SetBorder(true)
	panel.SetFrame(retroui.NewRect(10, 5, 40, 7))
	panel.SetRoot(split)
	panel.SetOnKey(func(ev retroui.KeyEvent) bool {
		if ev.Is(retroui.KeyEscape) {
			app.PopPanel()
			return true
		}
		return false
	})
	return panel
}

func firstListView(app *retroui.App) *retroui.ListView {
	if panel := app.TopPanel(); panel != nil {
		var found *retroui.ListView
		walk(panel.Root(), func(v retroui.View) {
			if lv, ok := v.(*retroui.ListView); ok && found == nil {
				found = lv
			}
		})
		return found
	}
	return nil
}

func walk(v retroui.View, fn func(retroui.View)) {
	if v == nil {
		return
	}
	fn(v)
	for _, child := range v.Children() {
		walk(child, fn)
	}
}
