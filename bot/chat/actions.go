package chat

import "fmt"

// Action wire names, shared with the widget.
const (
	ActionServices           = "services"
	ActionFAQ                = "faq"
	ActionStartLeadCapture   = "start_lead_capture"
	ActionBack               = "back_to_main"
	ActionBackToServicesList = "back_to_services_list"
	ActionBackToFAQList      = "back_to_faq_list"
	ActionServiceDetail      = "service_detail"
	ActionFAQDetail          = "faq_detail"
	ActionGenerateIdeas      = "generate_ideas"
)

// Action is one of the fixed set of things a visitor can click. Each variant
// carries exactly the data its handler needs.
type Action interface {
	isAction()
}

// OpenServices shows the service catalog.
type OpenServices struct{}

// OpenFAQ shows the knowledge base list.
type OpenFAQ struct{}

// StartLeadCapture resets the lead record and enters the collect flow.
type StartLeadCapture struct{}

// Back pops the navigation history.
type Back struct{}

// BackToServicesList returns from a service detail to the catalog.
type BackToServicesList struct{}

// BackToFAQList returns from an FAQ detail to the list.
type BackToFAQList struct{}

// SelectService opens one service's detail card.
type SelectService struct {
	ID string
}

// SelectFAQ opens one knowledge base entry.
type SelectFAQ struct {
	ID string
}

// GenerateIdeas asks the AI for project ideas for the named service.
type GenerateIdeas struct {
	ServiceName string
}

func (OpenServices) isAction()       {}
func (OpenFAQ) isAction()            {}
func (StartLeadCapture) isAction()   {}
func (Back) isAction()               {}
func (BackToServicesList) isAction() {}
func (BackToFAQList) isAction()      {}
func (SelectService) isAction()      {}
func (SelectFAQ) isAction()          {}
func (GenerateIdeas) isAction()      {}

// ParseAction converts a wire-level action into its typed variant.
func ParseAction(kind, detailID, serviceName string) (Action, error) {
	switch kind {
	case ActionServices:
		return OpenServices{}, nil
	case ActionFAQ:
		return OpenFAQ{}, nil
	case ActionStartLeadCapture:
		return StartLeadCapture{}, nil
	case ActionBack:
		return Back{}, nil
	case ActionBackToServicesList:
		return BackToServicesList{}, nil
	case ActionBackToFAQList:
		return BackToFAQList{}, nil
	case ActionServiceDetail:
		if detailID == "" {
			return nil, fmt.Errorf("action %s requires a detail id", kind)
		}
		return SelectService{ID: detailID}, nil
	case ActionFAQDetail:
		if detailID == "" {
			return nil, fmt.Errorf("action %s requires a detail id", kind)
		}
		return SelectFAQ{ID: detailID}, nil
	case ActionGenerateIdeas:
		if serviceName == "" {
			return nil, fmt.Errorf("action %s requires a service name", kind)
		}
		return GenerateIdeas{ServiceName: serviceName}, nil
	}
	return nil, fmt.Errorf("unknown action: %s", kind)
}
