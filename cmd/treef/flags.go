package main

import "strconv"

// statMode selects whether entries are classified and colored.
type statMode int

const (
	statAuto statMode = iota
	statOn
	statOff
)

// statFlag is a boolean pflag.Value that stores its own mode into a shared
// statMode, so that the last of -s and -S on the command line wins.
type statFlag struct {
	mode *statMode
	sets statMode
}

func (f *statFlag) String() string {
	if f.mode == nil {
		return "false"
	}
	return strconv.FormatBool(*f.mode == f.sets)
}

func (f *statFlag) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if v {
		*f.mode = f.sets
	} else if *f.mode == f.sets {
		*f.mode = statAuto
	}
	return nil
}

func (f *statFlag) Type() string {
	return "bool"
}

// resolve turns the mode into a decision. In auto mode classification is on
// only when stdout is not a terminal.
func (m statMode) resolve(stdoutIsTerminal bool) bool {
	switch m {
	case statOn:
		return true
	case statOff:
		return false
	default:
		return !stdoutIsTerminal
	}
}
