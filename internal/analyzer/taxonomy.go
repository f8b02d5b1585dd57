package analyzer

// SkillCategory groups canonical skill strings under a category name.
// Category and entry order is fixed so matched/missing lists come out in a
// stable, human-curated order.
type SkillCategory struct {
	Name   string
	Skills []string
}

// SkillTaxonomy is the controlled vocabulary of recognized skills, grouped by
// category. Process-wide and immutable; loaded once, never mutated at
// request time.
var SkillTaxonomy = []SkillCategory{
	{
		Name: "programming_languages",
		Skills: []string{
			"python", "java", "javascript", "typescript", "c++", "c#", "c",
			"ruby", "php", "swift", "kotlin", "go", "rust", "scala", "r",
			"matlab", "perl", "shell", "bash", "powershell", "dart", "lua",
		},
	},
	{
		Name: "web_frontend",
		Skills: []string{
			"html", "css", "react", "reactjs", "vue", "vuejs", "angular",
			"nextjs", "nuxtjs", "svelte", "jquery", "bootstrap", "tailwind",
			"sass", "scss", "webpack", "vite", "graphql",
		},
	},
	{
		Name: "web_backend",
		Skills: []string{
			"flask", "django", "fastapi", "express", "nodejs", "spring",
			"laravel", "rails", "asp.net", "nestjs", "gin", "fiber",
		},
	},
	{
		Name: "databases",
		Skills: []string{
			"sql", "mysql", "postgresql", "postgres", "mongodb", "redis",
			"sqlite", "oracle", "cassandra", "dynamodb", "elasticsearch",
			"neo4j", "mariadb", "firebase",
		},
	},
	{
		Name: "cloud_devops",
		Skills: []string{
			"aws", "azure", "gcp", "google cloud", "docker", "kubernetes",
			"terraform", "ansible", "jenkins", "github actions", "circleci",
			"linux", "nginx", "apache", "helm", "prometheus", "grafana",
		},
	},
	{
		Name: "data_ml",
		Skills: []string{
			"machine learning", "deep learning", "nlp", "computer vision",
			"tensorflow", "pytorch", "keras", "scikit-learn", "sklearn",
			"pandas", "numpy", "matplotlib", "seaborn", "spark", "hadoop",
			"tableau", "power bi", "data analysis", "data science",
			"statistics", "regression", "classification", "neural network",
		},
	},
	{
		Name: "tools_practices",
		Skills: []string{
			"git", "github", "gitlab", "bitbucket", "jira", "confluence",
			"agile", "scrum", "kanban", "ci/cd", "rest api", "microservices",
			"unit testing", "pytest", "jest", "selenium", "postman",
			"figma", "adobe xd", "linux", "vim",
		},
	},
	{
		Name: "soft_skills",
		Skills: []string{
			"leadership", "communication", "teamwork", "problem solving",
			"critical thinking", "time management", "adaptability",
			"project management", "collaboration", "presentation",
		},
	},
}

// AllSkills flattens the taxonomy in category order. The same skill may
// appear under two categories (e.g. "linux"); the matcher deduplicates.
func AllSkills() []string {
	var skills []string
	for _, cat := range SkillTaxonomy {
		skills = append(skills, cat.Skills...)
	}
	return skills
}
