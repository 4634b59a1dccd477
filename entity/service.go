package entity

// Service is a static catalog entry describing one agency offering.
type Service struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Overview string `json:"overview"`
	Process  string `json:"process"`
}

// ServicesData is the read-only service catalog shown by the chatbot.
var ServicesData = []Service{
	{
		ID:       "ai-integration",
		Name:     "AI Integration & AI Development",
		Icon:     "🤖",
		Overview: "We integrate cutting-edge AI capabilities into your existing systems and develop custom AI solutions tailored to your business needs. From natural language processing to computer vision, we help you leverage AI to automate processes, gain insights, and enhance user experiences.",
		Process:  "Our Process: 1) AI Strategy Assessment 2) Custom AI Solution Design 3) Integration & Development 4) Testing & Optimization 5) Deployment & Training",
	},
	{
		ID:       "machine-learning",
		Name:     "Machine Learning Solutions",
		Icon:     "🧠",
		Overview: "Build intelligent systems that learn from your data. We develop machine learning models for predictive analytics, pattern recognition, recommendation engines, and automated decision-making that improve over time.",
		Process:  "Our Process: 1) Data Analysis & Preparation 2) Model Selection & Design 3) Training & Validation 4) Integration & Deployment 5) Continuous Monitoring & Improvement",
	},
	{
		ID:       "software-development",
		Name:     "Software Development (ERPs, Web Apps, Portals, Systems)",
		Icon:     "💻",
		Overview: "Full-stack software development services including Enterprise Resource Planning (ERP) systems, web applications, customer portals, and custom business systems. We build scalable, secure, and user-friendly solutions that streamline your operations.",
		Process:  "Our Process: 1) Requirements Analysis 2) Architecture Design 3) Development & Testing 4) Deployment 5) Maintenance & Support",
	},
	{
		ID:       "ai-marketing",
		Name:     "AI-Driven Marketing Services",
		Icon:     "📊",
		Overview: "Leverage AI to optimize your marketing campaigns, personalize customer experiences, automate content generation, and analyze marketing performance. Our AI-powered marketing solutions help you reach the right audience at the right time.",
		Process:  "Our Process: 1) Marketing Strategy Review 2) AI Tool Selection 3) Campaign Automation Setup 4) Performance Monitoring 5) Optimization & Scaling",
	},
	{
		ID:       "seo-optimization",
		Name:     "SEO & Web Optimization",
		Icon:     "🔍",
		Overview: "Improve your website's search engine rankings and performance. We provide comprehensive SEO audits, keyword optimization, technical SEO improvements, content strategy, and ongoing monitoring to boost your online visibility.",
		Process:  "Our Process: 1) SEO Audit & Analysis 2) Strategy Development 3) On-Page & Technical Optimization 4) Content Enhancement 5) Monitoring & Reporting",
	},
	{
		ID:       "web-app-development",
		Name:     "Web App Development",
		Icon:     "🌐",
		Overview: "Create modern, responsive web applications that deliver exceptional user experiences. We build progressive web apps, single-page applications, and full-featured web platforms using the latest technologies and best practices.",
		Process:  "Our Process: 1) User Research & Design 2) Technology Stack Selection 3) Development & Testing 4) Performance Optimization 5) Launch & Support",
	},
	{
		ID:       "custom-automation",
		Name:     "Custom Automation Systems",
		Icon:     "⚙️",
		Overview: "Automate repetitive tasks and workflows to save time and reduce errors. We design and implement custom automation systems that integrate with your existing tools, streamline processes, and free your team to focus on high-value work.",
		Process:  "Our Process: 1) Process Analysis 2) Automation Design 3) System Development 4) Integration & Testing 5) Training & Documentation",
	},
	{
		ID:       "data-analytics",
		Name:     "Data Analytics & AI Insights",
		Icon:     "📈",
		Overview: "Transform your data into actionable insights. We help you collect, analyze, and visualize data using advanced analytics and AI-powered tools to make informed business decisions and identify growth opportunities.",
		Process:  "Our Process: 1) Data Assessment 2) Analytics Platform Setup 3) Data Processing & Analysis 4) Insight Generation 5) Reporting & Dashboards",
	},
	{
		ID:       "api-integrations",
		Name:     "API & System Integrations",
		Icon:     "🔌",
		Overview: "Connect your systems seamlessly with robust API development and third-party integrations. We build secure, scalable APIs and integrate your applications with popular services, databases, and platforms.",
		Process:  "Our Process: 1) Integration Requirements 2) API Design & Development 3) Security Implementation 4) Testing & Documentation 5) Deployment & Monitoring",
	},
	{
		ID:       "branding-digital",
		Name:     "Branding & Digital Presence Enhancement",
		Icon:     "🎨",
		Overview: "Strengthen your brand identity and digital presence. We provide comprehensive branding services, website redesigns, digital marketing strategies, and content creation to help you stand out in the digital landscape.",
		Process:  "Our Process: 1) Brand Audit 2) Strategy Development 3) Design & Content Creation 4) Implementation 5) Performance Tracking & Refinement",
	},
}

// FindService looks up a service by id.
func FindService(id string) (*Service, bool) {
	for i := range ServicesData {
		if ServicesData[i].ID == id {
			return &ServicesData[i], true
		}
	}
	return nil, false
}

// ServiceNames returns the names of every catalog entry, in order.
func ServiceNames() []string {
	names := make([]string, 0, len(ServicesData))
	for _, s := range ServicesData {
		names = append(names, s.Name)
	}
	return names
}
