package device

import (
	"go.uber.org/zap"

	"github.com/DoyleJ11/sosphone-backend/internal/conf"
	"github.com/DoyleJ11/sosphone-backend/internal/i18n"
	"github.com/DoyleJ11/sosphone-backend/internal/nav"
	"github.com/DoyleJ11/sosphone-backend/internal/sos"
)

func (d *Device) launch(in nav.Intent) error {
	top, fresh, popped := d.stack.Launch(in)
	d.teardown(popped...)
	return d.show(top, fresh)
}

// back pops the top screen. On the root screen it does nothing.
func (d *Device) back() error {
	top, popped, ok := d.stack.Back()
	if !ok {
		return nil
	}
	d.teardown(popped)
	return d.show(top, false)
}

func (d *Device) teardown(entries ...nav.Entry) {
	for _, e := range entries {
		if e.Screen == nav.ScreenDice {
			d.seq.Stop()
			d.dice.Rolling = false
		}
	}
}

// show runs the screen hooks for top. fresh is true when the screen was just created.
func (d *Device) show(top *nav.Entry, fresh bool) error {
	switch top.Screen {
	case nav.ScreenEntry:
		if fresh {
			in, redirect, err := d.ctrl.Gate(d.ctx, top.Intent)
			if err != nil {
				d.log.Error("entry gate", zap.Error(err))
				return err
			}
			if redirect {
				return d.launch(in)
			}
		}
		if upd := conf.OnEntryScreenShown(&top.Intent); upd.ClearField {
			d.entry.Phone = ""
			if upd.Notice {
				d.toast(i18n.NewPhoneNotice)
			}
		}

	case nav.ScreenMain:
		if top.Intent.PhoneNumber != "" {
			d.main.Phone = top.Intent.PhoneNumber
		}
		if fresh && !d.main.Granted {
			d.actions = append(d.actions, sos.RequestPermission())
		}

	case nav.ScreenDice:
		if fresh {
			d.dice = DiceView{Result: "0"}
		}

	case nav.ScreenForm:
		if fresh {
			d.form = FormView{}
		}

	case nav.ScreenResult:
		d.result.Display(top.Intent.ResultMessage)
	}
	return nil
}
