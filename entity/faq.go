package entity

// NextOption is a suggested follow-up FAQ topic.
type NextOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// FAQ is a static knowledge base entry with its contextual next topics.
type FAQ struct {
	ID          string       `json:"id"`
	Question    string       `json:"q"`
	Answer      string       `json:"a"`
	NextOptions []NextOption `json:"nextOptions"`
}

// FAQData is the read-only knowledge base shown by the chatbot.
var FAQData = []FAQ{
	{
		ID:       "faq-1",
		Question: "What is Bricklix, and who is it for?",
		Answer:   "Bricklix is a modern, scalable platform designed to streamline operations, automate repetitive tasks, and centralize business workflows. It's built for startups, agencies, enterprises, and anyone who wants to run their business with more speed and clarity. Whether you're managing a small team or running a large operation, Bricklix scales smoothly with your needs.",
		NextOptions: []NextOption{
			{ID: "faq-2", Text: "How does Bricklix work on a daily basis?"},
			{ID: "faq-3", Text: "How do I get started with Bricklix?"},
			{ID: "faq-4", Text: "Can Bricklix integrate with my existing systems?"},
		},
	},
	{
		ID:       "faq-2",
		Question: "How does Bricklix work on a daily basis?",
		Answer:   "Bricklix brings your workflows into one clean, automated system. It handles tasks, approvals, real-time data processing, team collaboration, and intelligent insights powered by AI. Daily operations become faster, smarter, and far more organized, with automation reducing manual work and boosting productivity.",
		NextOptions: []NextOption{
			{ID: "faq-3", Text: "How do I get started with Bricklix?"},
			{ID: "faq-5", Text: "Is Bricklix customizable for my business needs?"},
			{ID: "faq-6", Text: "How does data migration and team training work?"},
		},
	},
	{
		ID:       "faq-3",
		Question: "How do I get started with Bricklix?",
		Answer:   "Getting started is simple: create an account, request a demo or trial, and begin onboarding. Our team guides you through setup, system configuration, and feature activation. Most users are fully operational within a short onboarding window, depending on the complexity of your business.",
		NextOptions: []NextOption{
			{ID: "faq-4", Text: "Can Bricklix integrate with my existing systems or tools?"},
			{ID: "faq-6", Text: "How does data migration and team training work?"},
			{ID: "faq-8", Text: "What are the pricing options and plans?"},
		},
	},
	{
		ID:       "faq-4",
		Question: "Can Bricklix integrate with my existing systems or tools?",
		Answer:   "Yes — Bricklix connects seamlessly with popular tools and platforms. It supports third-party integrations, API connections, webhooks, and developer-friendly documentation, making it easy to plug into your existing ecosystem without disruption.",
		NextOptions: []NextOption{
			{ID: "faq-5", Text: "Is Bricklix customizable for my business needs?"},
			{ID: "faq-9", Text: "What kind of support does Bricklix offer?"},
			{ID: "faq-1", Text: "What is Bricklix, and who is it for?"},
		},
	},
	{
		ID:       "faq-5",
		Question: "Is Bricklix customizable for my business needs?",
		Answer:   "Absolutely. Bricklix offers modular features, flexible workflow builders, UI/UX adjustments, role-based controls, and the option for custom development. If you want full branding control, white-labeling is also available.",
		NextOptions: []NextOption{
			{ID: "faq-6", Text: "How does data migration and team training work?"},
			{ID: "faq-7", Text: "How secure is Bricklix, and how is my data protected?"},
			{ID: "faq-4", Text: "Can Bricklix integrate with my existing systems?"},
		},
	},
	{
		ID:       "faq-6",
		Question: "How does data migration and team training work?",
		Answer:   "We assist with importing your existing data into Bricklix and ensure everything is structured correctly. During onboarding, your team gets guided training sessions, tutorials, and ongoing learning resources so they can adopt the platform quickly and confidently.",
		NextOptions: []NextOption{
			{ID: "faq-7", Text: "How secure is Bricklix, and how is my data protected?"},
			{ID: "faq-9", Text: "What kind of support does Bricklix offer?"},
			{ID: "faq-3", Text: "How do I get started with Bricklix?"},
		},
	},
	{
		ID:       "faq-7",
		Question: "How secure is Bricklix, and how is my data protected?",
		Answer:   "Bricklix uses industry-grade encryption, secure storage, and continuous monitoring to protect your data. We follow modern compliance standards, offer regular backups, and ensure you always retain full ownership of your information. Your data stays safe, private, and recoverable.",
		NextOptions: []NextOption{
			{ID: "faq-8", Text: "What are the pricing options and plans?"},
			{ID: "faq-10", Text: "How reliable is Bricklix in terms of speed and uptime?"},
			{ID: "faq-5", Text: "Is Bricklix customizable for my business needs?"},
		},
	},
	{
		ID:       "faq-8",
		Question: "What are the pricing options and plans?",
		Answer:   "Bricklix offers flexible pricing based on monthly or yearly plans. Options range from starter tiers to advanced and enterprise packages with additional features and support. Upgrading or downgrading is easy, so you can adjust based on your growth.",
		NextOptions: []NextOption{
			{ID: "faq-9", Text: "What kind of support does Bricklix offer?"},
			{ID: "faq-10", Text: "How reliable is Bricklix in terms of speed and uptime?"},
			{ID: "faq-3", Text: "How do I get started with Bricklix?"},
		},
	},
	{
		ID:       "faq-9",
		Question: "What kind of support does Bricklix offer?",
		Answer:   "We provide responsive support with clear service hours, fast ticket resolution, platform documentation, and a knowledge base. Higher-tier plans include priority support, dedicated account managers, and hands-on assistance when you need it.",
		NextOptions: []NextOption{
			{ID: "faq-10", Text: "How reliable is Bricklix in terms of speed and uptime?"},
			{ID: "faq-7", Text: "How secure is Bricklix, and how is my data protected?"},
			{ID: "faq-8", Text: "What are the pricing options and plans?"},
		},
	},
	{
		ID:       "faq-10",
		Question: "How reliable is Bricklix in terms of speed and uptime?",
		Answer:   "Bricklix is built for high performance, offering fast load times, smooth handling of heavy workloads, and a strong uptime record. Regular updates keep the system optimized, secure, and running at top speed.",
		NextOptions: []NextOption{
			{ID: "faq-1", Text: "What is Bricklix, and who is it for?"},
			{ID: "faq-7", Text: "How secure is Bricklix, and how is my data protected?"},
			{ID: "faq-9", Text: "What kind of support does Bricklix offer?"},
		},
	},
}

// FindFAQ looks up a knowledge base entry by id.
func FindFAQ(id string) (*FAQ, bool) {
	for i := range FAQData {
		if FAQData[i].ID == id {
			return &FAQData[i], true
		}
	}
	return nil, false
}
