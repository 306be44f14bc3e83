package domain

// DefaultFilter selects every diode or lander.
const DefaultFilter = "any"

// RecoveryOptions are the user's choices for an extractor run.
type RecoveryOptions struct {
	InputRoot  string
	OutputRoot string

	Overwrite            bool
	DirectorizeBandClass bool
	DirectorizeLocation  bool
	DirectorizeMonth     bool
	DirectorizeSol       bool
	NoAutoRotate         bool
	NoReconstruct        bool
	FilterDiode          string
	FilterLander         string
	Interlace            bool
	GenerateMetadata     bool
	Verbose              bool
	Jobs                 bool

	// EventChannel is the address the extractor should serve its event channel on.
	EventChannel string
}

// Args marshals the options into the extractor's command line.
func (o RecoveryOptions) Args() []string {
	var args []string
	flag := func(on bool, name string) {
		if on {
			args = append(args, name)
		}
	}

	flag(o.Overwrite, "--overwrite")
	flag(o.DirectorizeBandClass, "--directorize-band-class")
	flag(o.DirectorizeLocation, "--directorize-location")
	flag(o.DirectorizeMonth, "--directorize-month")
	flag(o.DirectorizeSol, "--directorize-sol")
	flag(o.NoAutoRotate, "--no-auto-rotate")
	flag(o.NoReconstruct, "--no-reconstruct")

	args = append(args,
		"--filter-diode="+orDefault(o.FilterDiode),
		"--filter-lander="+orDefault(o.FilterLander),
	)

	flag(o.Interlace, "--interlace")
	flag(o.GenerateMetadata, "--generate-metadata")
	flag(o.Verbose, "--verbose")
	flag(o.Jobs, "--jobs")

	args = append(args, "--recursive", "--ignore-bad-files", "--remote-start", "--suppress")

	if o.EventChannel != "" {
		args = append(args, "--event-channel="+o.EventChannel)
	}

	return append(args, o.InputRoot, o.OutputRoot)
}

func orDefault(filter string) string {
	if filter == "" {
		return DefaultFilter
	}
	return filter
}
