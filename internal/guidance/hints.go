package guidance

// questionHints is the static per-question hint table. Questions without an
// entry simply have no on-demand hints.
var questionHints = map[string][]string{
	"sales-1": {
		"Start with your background and relevant experience",
		"Mention why you're passionate about sales",
		"Keep it concise (1-2 minutes)",
	},
	"sales-2": {
		"Use the STAR method: Situation, Task, Action, Result",
		"Focus on how you resolved the conflict",
		"Highlight the positive outcome",
	},
	"sales-4": {
		"Walk through your sales funnel step by step",
		"Mention tools or techniques you use",
		"Include how you measure success",
	},
	"eng-1": {
		"Mention your technical background and education",
		"Highlight key technologies you work with",
		"Keep it professional and concise",
	},
	"eng-2": {
		"Explain the problem clearly",
		"Describe your approach and thought process",
		"Include the technologies/tools you used",
		"Mention the outcome and what you learned",
	},
	"eng-3": {
		"Focus on collaboration and communication",
		"Give examples of code review practices",
		"Mention how you handle feedback",
	},
	"retail-1": {
		"Express enthusiasm for customer service",
		"Mention any relevant experience",
		"Show your people skills",
	},
	"retail-2": {
		"Use a specific example",
		"Describe what made the service excellent",
		"Include the customer's reaction",
	},
	"retail-3": {
		"Show empathy and understanding",
		"Describe your step-by-step approach",
		"Focus on finding a solution",
	},
}
