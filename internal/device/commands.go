package device

import (
	"errors"
	"strconv"

	"go.uber.org/zap"

	"github.com/DoyleJ11/sosphone-backend/internal/conf"
	"github.com/DoyleJ11/sosphone-backend/internal/form"
	"github.com/DoyleJ11/sosphone-backend/internal/i18n"
	"github.com/DoyleJ11/sosphone-backend/internal/nav"
	"github.com/DoyleJ11/sosphone-backend/internal/reveal"
	"github.com/DoyleJ11/sosphone-backend/internal/sos"
)

var ErrWrongScreen = errors.New("command not available on this screen")
var ErrUnknownCommand = errors.New("unknown command")

type CommandType string

const (
	CmdSubmitPhone      CommandType = "SubmitPhone"
	CmdOpenDice         CommandType = "OpenDice"
	CmdOpenForm         CommandType = "OpenForm"
	CmdChangePhone      CommandType = "ChangePhone"
	CmdCall             CommandType = "Call"
	CmdPermissionResult CommandType = "PermissionResult"
	CmdOpenWeb          CommandType = "OpenWeb"
	CmdSurprise         CommandType = "Surprise"
	CmdSetAlarm         CommandType = "SetAlarm"
	CmdRollDice         CommandType = "RollDice"
	CmdDiceBack         CommandType = "DiceBack"
	CmdSubmitForm       CommandType = "SubmitForm"
	CmdFormBack         CommandType = "FormBack"
	CmdDismissResult    CommandType = "DismissResult"
	CmdBack             CommandType = "Back"
)

// Command is one user action. Phone and Target carry raw text as typed by the user.
type Command struct {
	Type    CommandType
	Phone   string
	Target  string
	Granted bool
	Form    form.Fields
}

// screenOf lists the screen each command belongs to. Back works everywhere.
var screenOf = map[CommandType]nav.Screen{
	CmdSubmitPhone:      nav.ScreenEntry,
	CmdOpenDice:         nav.ScreenEntry,
	CmdOpenForm:         nav.ScreenEntry,
	CmdChangePhone:      nav.ScreenMain,
	CmdCall:             nav.ScreenMain,
	CmdPermissionResult: nav.ScreenMain,
	CmdOpenWeb:          nav.ScreenMain,
	CmdSurprise:         nav.ScreenMain,
	CmdSetAlarm:         nav.ScreenMain,
	CmdRollDice:         nav.ScreenDice,
	CmdDiceBack:         nav.ScreenDice,
	CmdSubmitForm:       nav.ScreenForm,
	CmdFormBack:         nav.ScreenForm,
	CmdDismissResult:    nav.ScreenResult,
}

func (d *Device) handle(cmd Command) error {
	if cmd.Type == CmdBack {
		return d.back()
	}
	want, ok := screenOf[cmd.Type]
	if !ok {
		return ErrUnknownCommand
	}
	if top := d.stack.Top(); top == nil || top.Screen != want {
		return ErrWrongScreen
	}

	switch cmd.Type {
	case CmdSubmitPhone:
		d.entry.Phone = cmd.Phone
		in, err := d.ctrl.Submit(d.ctx, cmd.Phone)
		if err != nil {
			return err
		}
		return d.launch(in)

	case CmdOpenDice:
		return d.launch(nav.Intent{Target: nav.ScreenDice, ClearTop: true})

	case CmdOpenForm:
		return d.launch(nav.Intent{Target: nav.ScreenForm, ClearTop: true})

	case CmdChangePhone:
		in, err := d.ctrl.Reset(d.ctx)
		if err != nil {
			return err
		}
		return d.launch(in)

	case CmdCall:
		if cmd.Granted {
			d.main.Granted = true
		}
		acts, err := sos.Call(d.main.Phone, cmd.Granted)
		d.actions = append(d.actions, acts...)
		return err

	case CmdPermissionResult:
		d.main.Granted = cmd.Granted
		acts, err := sos.PermissionResult(cmd.Granted)
		d.actions = append(d.actions, acts...)
		return err

	case CmdOpenWeb:
		d.toast(i18n.OpeningURL)
		d.actions = append(d.actions, sos.OpenWeb())
		return nil

	case CmdSurprise:
		d.toast(i18n.SurpriseTeaser)
		act, msg := sos.Surprise(d.src)
		d.toast(msg)
		d.actions = append(d.actions, act)
		return nil

	case CmdSetAlarm:
		act := sos.Alarm(d.now())
		d.toast(i18n.SettingAlarm, act.Hour, act.Minute)
		act.Message = d.p.Sprintf(act.Message)
		d.actions = append(d.actions, act)
		d.toast(i18n.AlarmCreated)
		return nil

	case CmdRollDice:
		target, err := reveal.ParseTarget(cmd.Target)
		if err != nil {
			d.dice.Result = "?"
			return err
		}
		return d.seq.Start(target)

	case CmdDiceBack:
		// Same signal as a reset, but the stored number stays.
		return d.launch(conf.ResetIntent())

	case CmdSubmitForm:
		err := form.Check(cmd.Form)
		d.form.Valid = err == nil
		d.form.Error = ""
		if err != nil {
			d.form.Error = d.p.Sprintf(formReason(err))
			return err
		}
		d.toast(i18n.FormValid)
		return nil

	case CmdFormBack:
		return d.launch(nav.Intent{Target: nav.ScreenEntry, ClearTop: true})

	case CmdDismissResult:
		d.result.Dismiss()
		return d.back()
	}
	return ErrUnknownCommand
}

// report turns a failed command into a notice for the user.
func (d *Device) report(err error) {
	switch {
	case errors.Is(err, conf.ErrEmptyInput), errors.Is(err, sos.ErrNoNumber):
		d.toast(i18n.EmptyPhone)
	case errors.Is(err, conf.ErrInvalidPhoneFormat):
		d.toast(i18n.InvalidPhone)
	case errors.Is(err, reveal.ErrTargetOutOfRange):
		d.toast(i18n.TargetOutOfRange, reveal.MinTarget, reveal.MaxTarget)
	case errors.Is(err, reveal.ErrSequenceActive):
		d.toast(i18n.RollInProgress)
	case errors.Is(err, sos.ErrPermissionDenied):
		d.toast(i18n.PermissionNeeded)
	case errors.Is(err, form.ErrNameRequired), errors.Is(err, form.ErrTextRequired), errors.Is(err, form.ErrOptionRequired):
		d.toast(i18n.FormInvalid)
	case errors.Is(err, ErrWrongScreen), errors.Is(err, ErrUnknownCommand):
		d.toast(i18n.WrongScreen)
	default:
		d.log.Error("command failed", zap.Error(err))
		d.toast(i18n.StorageFailure)
	}
}

func formReason(err error) string {
	switch {
	case errors.Is(err, form.ErrNameRequired):
		return i18n.NameRequired
	case errors.Is(err, form.ErrTextRequired):
		return i18n.TextRequired
	default:
		return i18n.OptionRequired
	}
}

// observe applies reveal events to the dice screen.
func (d *Device) observe(e reveal.Event) {
	d.dirty = true
	switch e.Type {
	case reveal.EvtStarted:
		d.dice.Target = e.Target
		d.dice.Rolling = true
		d.dice.Step = 0

	case reveal.EvtRolled:
		d.dice.Dice = e.Roll
		d.dice.Sum = e.Sum
		d.dice.Step = e.Step

	case reveal.EvtWon:
		d.dice.Rolling = false
		d.dice.Result = strconv.Itoa(e.Sum)
		msg := d.p.Sprintf(i18n.DiceWon, e.Target)
		if err := d.launch(nav.Intent{Target: nav.ScreenResult, ResultMessage: msg}); err != nil {
			d.report(err)
		}

	case reveal.EvtLost:
		d.dice.Rolling = false
		d.dice.Result = strconv.Itoa(e.Sum)
		d.toast(i18n.DiceLost, e.Sum, e.Target)
	}
}
