package statemachine

// Stage is a hiring pipeline stage of an applicant.
type Stage string

const (
	StageNew           Stage = "NEW"
	StageContacted     Stage = "CONTACTED"
	StagePhoneScreen   Stage = "PHONE_SCREEN"
	StageInPerson1     Stage = "IN_PERSON_1"
	StageInPerson2     Stage = "IN_PERSON_2"
	StageTechTest      Stage = "TECH_TEST"
	StageOfferSent     Stage = "OFFER_SENT"
	StageOfferAccepted Stage = "OFFER_ACCEPTED"
	StageHired         Stage = "HIRED"
	StageRejected      Stage = "REJECTED"
)

// OrderedStages is the forward order of the pipeline. The last two are terminal.
var OrderedStages = []Stage{
	StageNew,
	StageContacted,
	StagePhoneScreen,
	StageInPerson1,
	StageInPerson2,
	StageTechTest,
	StageOfferSent,
	StageOfferAccepted,
	StageHired,
	StageRejected,
}

func (s Stage) String() string {
	return string(s)
}

// NewStageMachine builds the applicant pipeline table: every non-terminal stage
// may advance exactly one step forward or jump straight to HIRED or REJECTED.
func NewStageMachine() *StateMachine[Stage] {
	sm := New[Stage]()
	for i, s := range OrderedStages {
		if s == StageHired || s == StageRejected {
			continue
		}
		next := OrderedStages[i+1]
		targets := []Stage{next}
		for _, t := range []Stage{StageHired, StageRejected} {
			if t != next {
				targets = append(targets, t)
			}
		}
		sm.Allow(s, targets...)
	}
	return sm.Terminal(StageHired, StageRejected)
}

var stages = NewStageMachine()

// Stages returns the shared applicant pipeline table.
func Stages() *StateMachine[Stage] {
	return stages
}

// ParseStage returns the Stage named by s and whether it is known.
func ParseStage(s string) (Stage, bool) {
	st := Stage(s)
	return st, stages.IsKnown(st)
}
