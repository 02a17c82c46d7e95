package punkt

// Reason names the rule that decided a candidate boundary.
type Reason string

// Decision reasons, in the order the rules are tried.
const (
	ReasonNone                Reason = ""
	ReasonTerminal            Reason = "terminal punctuation"
	ReasonDefaultPeriod       Reason = "default period"
	ReasonAbbreviation        Reason = "known abbreviation"
	ReasonEllipsis            Reason = "ellipsis"
	ReasonCollocation         Reason = "known collocation"
	ReasonAbbrevOrthographic  Reason = "abbreviation followed by orthographic sentence starter"
	ReasonAbbrevStarter       Reason = "abbreviation followed by known sentence starter"
	ReasonInitialOrthographic Reason = "initial followed by orthographic non-starter"
	ReasonNumberOrthographic  Reason = "number followed by orthographic non-starter"
	ReasonInitialSpecial      Reason = "initial followed by word never seen in lower case"
)

// Decision records how one candidate boundary was resolved.
type Decision struct {
	Token  string
	Start  int
	End    int
	Break  bool
	Reason Reason
}
