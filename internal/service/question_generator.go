package service

import (
	"strings"

	"github.com/lshigami/intervue/internal/dto"
)

type keywordRule struct {
	keywords  []string
	questions []dto.GeneratedQuestion
}

var keywordRules = []keywordRule{
	{
		keywords: []string{"javascript", "js"},
		questions: []dto.GeneratedQuestion{
			{Category: "JavaScript", Question: "Explain the difference between var, let, and const in JavaScript.", Difficulty: "Medium"},
			{Category: "JavaScript", Question: "What is event delegation and why is it useful?", Difficulty: "Hard"},
		},
	},
	{
		keywords: []string{"react"},
		questions: []dto.GeneratedQuestion{
			{Category: "React", Question: "What are React Hooks and how do they differ from class components?", Difficulty: "Medium"},
			{Category: "React", Question: "Explain the React component lifecycle methods.", Difficulty: "Hard"},
		},
	},
	{
		keywords: []string{"python"},
		questions: []dto.GeneratedQuestion{
			{Category: "Python", Question: "Explain the difference between lists and tuples in Python.", Difficulty: "Easy"},
			{Category: "Python", Question: "What are Python decorators and how do you use them?", Difficulty: "Hard"},
		},
	},
	{
		keywords: []string{"java"},
		questions: []dto.GeneratedQuestion{
			{Category: "Java", Question: "What is the difference between abstract classes and interfaces in Java?", Difficulty: "Medium"},
			{Category: "Java", Question: "Explain Java memory management and garbage collection.", Difficulty: "Hard"},
		},
	},
	{
		keywords: []string{"database", "sql"},
		questions: []dto.GeneratedQuestion{
			{Category: "Database", Question: "Explain ACID properties in database transactions.", Difficulty: "Hard"},
			{Category: "Database", Question: "What is the difference between SQL and NoSQL databases?", Difficulty: "Medium"},
		},
	},
	{
		keywords: []string{"aws", "cloud"},
		questions: []dto.GeneratedQuestion{
			{Category: "Cloud Computing", Question: "What are the different types of cloud service models (IaaS, PaaS, SaaS)?", Difficulty: "Medium"},
			{Category: "AWS", Question: "Explain the difference between EC2, Lambda, and ECS.", Difficulty: "Hard"},
		},
	},
	{
		keywords: []string{"docker", "container"},
		questions: []dto.GeneratedQuestion{
			{Category: "DevOps", Question: "What are the benefits of containerization with Docker?", Difficulty: "Medium"},
		},
	},
	{
		keywords: []string{"kubernetes", "k8s"},
		questions: []dto.GeneratedQuestion{
			{Category: "DevOps", Question: "Explain Kubernetes pods, services, and deployments.", Difficulty: "Hard"},
		},
	},
	{
		keywords: []string{"senior", "lead", "manager", "architect"},
		questions: []dto.GeneratedQuestion{
			{Category: "Leadership", Question: "How do you handle technical disagreements within your team?", Difficulty: "Medium"},
			{Category: "Architecture", Question: "Describe how you would design a scalable system for high traffic.", Difficulty: "Hard"},
		},
	},
}

var generalQuestions = []dto.GeneratedQuestion{
	{Category: "General", Question: "Describe your most challenging project and how you overcame the difficulties.", Difficulty: "Medium"},
	{Category: "Problem Solving", Question: "How do you approach debugging a complex issue in your code?", Difficulty: "Medium"},
	{Category: "Best Practices", Question: "What are some code review best practices you follow?", Difficulty: "Easy"},
}

// GenerateQuestions matches resume text against fixed keyword groups with
// case-insensitive substring tests. Matches are plain substrings, so "java"
// also fires for "javascript". The general questions are always appended.
func GenerateQuestions(text string) []dto.GeneratedQuestion {
	lower := strings.ToLower(text)
	var out []dto.GeneratedQuestion
	for _, rule := range keywordRules {
		if containsAny(lower, rule.keywords) {
			out = append(out, rule.questions...)
		}
	}
	return append(out, generalQuestions...)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
