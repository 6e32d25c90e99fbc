package device

import (
	"github.com/DoyleJ11/sosphone-backend/internal/nav"
	"github.com/DoyleJ11/sosphone-backend/internal/reveal"
	"github.com/DoyleJ11/sosphone-backend/internal/sos"
)

// View is what a client renders: the screen on top, its state, and the notices and device
// actions produced since the previous snapshot.
type View struct {
	Screen  nav.Screen   `json:"screen"`
	Stack   []nav.Screen `json:"stack"`
	Entry   *EntryView   `json:"entry,omitempty"`
	Main    *MainView    `json:"main,omitempty"`
	Dice    *DiceView    `json:"dice,omitempty"`
	Form    *FormView    `json:"form,omitempty"`
	Result  *ResultView  `json:"result,omitempty"`
	Toasts  []string     `json:"toasts,omitempty"`
	Actions []sos.Action `json:"actions,omitempty"`
}

type EntryView struct {
	Phone string `json:"phone"`
}

type MainView struct {
	Phone   string `json:"phone"`
	Granted bool   `json:"granted"`
}

type DiceView struct {
	Target  int           `json:"target"`
	Rolling bool          `json:"rolling"`
	Step    int           `json:"step"`
	Dice    reveal.Triple `json:"dice"`
	Sum     int           `json:"sum"`
	// Result is the text under the dice: "0" before the first game, "?" after a rejected target.
	Result string `json:"result"`
}

type FormView struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

type ResultView struct {
	Message string `json:"message"`
}

func (d *Device) view() View {
	v := View{
		Stack:   d.stack.Screens(),
		Toasts:  d.toasts,
		Actions: d.actions,
	}
	top := d.stack.Top()
	if top == nil {
		return v
	}
	v.Screen = top.Screen

	switch top.Screen {
	case nav.ScreenEntry:
		e := d.entry
		v.Entry = &e
	case nav.ScreenMain:
		m := d.main
		v.Main = &m
	case nav.ScreenDice:
		dv := d.dice
		v.Dice = &dv
	case nav.ScreenForm:
		f := d.form
		v.Form = &f
	case nav.ScreenResult:
		v.Result = &ResultView{Message: d.result.Message()}
	}
	return v
}
