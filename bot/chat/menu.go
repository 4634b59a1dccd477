package chat

import "Bricklix/entity"

// AvailableActions returns the quick-action buttons to display beneath the
// transcript for the session's current step. Collect steps, the lead-sent
// interstitial and a busy session show none.
func AvailableActions(s *Session) []entity.ActionRef {
	if s == nil || s.Busy || s.CurrentStep.Transient() {
		return nil
	}

	switch s.CurrentStep {
	case StepMain, StepChatMode:
		return []entity.ActionRef{
			{ID: "services", Label: "Our Services", Action: ActionServices},
			{ID: "faq", Label: "Knowledge Base (FAQ)", Action: ActionFAQ},
			{ID: "contact", Label: "Contact Sales", Action: ActionStartLeadCapture},
		}

	case StepServices:
		if s.DetailID != "" {
			service, ok := entity.FindService(s.DetailID)
			name := s.DetailID
			if ok {
				name = service.Name
			}
			return []entity.ActionRef{
				{ID: "ideas", Label: "Get Project Ideas", Action: ActionGenerateIdeas, ServiceName: name},
				{ID: "back_services", Label: "Back to Services List", Action: ActionBackToServicesList},
				{ID: "contact", Label: "Contact Sales", Action: ActionStartLeadCapture},
			}
		}
		actions := []entity.ActionRef{
			{ID: "back", Label: "Back", Action: ActionBack},
		}
		for _, service := range entity.ServicesData {
			actions = append(actions, entity.ActionRef{
				ID:       service.ID,
				Label:    service.Icon + " " + service.Name,
				Action:   ActionServiceDetail,
				DetailID: service.ID,
			})
		}
		return actions

	case StepFAQList:
		actions := []entity.ActionRef{
			{ID: "back", Label: "Back", Action: ActionBack},
		}
		for _, faq := range entity.FAQData {
			actions = append(actions, entity.ActionRef{
				ID:       faq.ID,
				Label:    faq.Question,
				Action:   ActionFAQDetail,
				DetailID: faq.ID,
			})
		}
		return actions

	case StepFAQDetail:
		var actions []entity.ActionRef
		if faq, ok := entity.FindFAQ(s.DetailID); ok {
			for _, opt := range faq.NextOptions {
				actions = append(actions, entity.ActionRef{
					ID:       opt.ID,
					Label:    opt.Text,
					Action:   ActionFAQDetail,
					DetailID: opt.ID,
				})
			}
		}
		actions = append(actions,
			entity.ActionRef{ID: "back_faq", Label: "Back to All FAQs", Action: ActionBackToFAQList},
			entity.ActionRef{ID: "main", Label: "Main Menu", Action: ActionBack},
		)
		return actions
	}

	return nil
}
