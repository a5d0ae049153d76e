package model

// LearningDomain 学习领域配置：平台标识、关键词、子主题标签。
// 启动时构建一次，运行期只读。
type LearningDomain struct {
	Name          string
	Platforms     []string
	Keywords      []string
	Subcategories []string
}

// Categorization 分类器输出
type Categorization struct {
	Category     string  `json:"category"`
	Subcategory  *string `json:"subcategory"`
	LearningType string  `json:"learningType"`
	Confidence   float64 `json:"confidence"`
}

// GeneralLearning 无领域命中时的兜底分类
const GeneralLearning = "General Learning"

// DefaultTaxonomy 内置学习领域表。
// 切片顺序即分类器的遍历顺序：同分时先遍历到的领域获胜，顺序是契约的一部分。
func DefaultTaxonomy() []LearningDomain {
	return []LearningDomain{
		{
			Name:          "Frontend Development",
			Platforms:     []string{"mdn", "w3schools", "css-tricks", "frontendmasters", "codecademy"},
			Keywords:      []string{"html", "css", "javascript", "react", "vue", "angular", "frontend", "dom", "responsive"},
			Subcategories: []string{"HTML", "CSS", "JavaScript", "React", "Vue", "Angular", "TypeScript", "Web Components"},
		},
		{
			Name:          "Backend Development",
			Platforms:     []string{"nodejs.org", "expressjs", "django", "flask", "spring.io"},
			Keywords:      []string{"node", "express", "django", "flask", "api", "backend", "server", "database", "rest", "graphql"},
			Subcategories: []string{"Node.js", "Python", "Java", "APIs", "Databases", "Authentication", "Microservices"},
		},
		{
			Name:          "Data Science",
			Platforms:     []string{"kaggle", "datacamp", "jupyter", "tensorflow", "pytorch"},
			Keywords:      []string{"python", "pandas", "numpy", "machine learning", "data", "analysis", "statistics", "ai", "ml"},
			Subcategories: []string{"Python", "Pandas", "NumPy", "Matplotlib", "Scikit-learn", "Statistics", "Data Visualization"},
		},
		{
			Name:          "Machine Learning & AI",
			Platforms:     []string{"tensorflow", "pytorch", "huggingface", "openai", "deeplearning.ai"},
			Keywords:      []string{"machine learning", "deep learning", "neural network", "ai", "model", "tensorflow", "pytorch"},
			Subcategories: []string{"Neural Networks", "NLP", "Computer Vision", "Deep Learning", "MLOps", "Transformers"},
		},
		{
			Name:          "Mobile Development",
			Platforms:     []string{"developer.android", "developer.apple", "reactnative", "flutter.dev"},
			Keywords:      []string{"android", "ios", "mobile", "react native", "flutter", "swift", "kotlin"},
			Subcategories: []string{"Android", "iOS", "React Native", "Flutter", "Swift", "Kotlin"},
		},
		{
			Name:          "Cloud & DevOps",
			Platforms:     []string{"aws.amazon", "cloud.google", "azure.microsoft", "docker", "kubernetes"},
			Keywords:      []string{"aws", "azure", "gcp", "cloud", "docker", "kubernetes", "devops", "ci/cd", "terraform"},
			Subcategories: []string{"AWS", "Azure", "GCP", "Docker", "Kubernetes", "CI/CD", "Infrastructure"},
		},
		{
			Name:          "Database & SQL",
			Platforms:     []string{"postgresql", "mongodb", "redis", "mysql", "oracle"},
			Keywords:      []string{"sql", "database", "query", "mongodb", "postgresql", "mysql", "nosql", "orm"},
			Subcategories: []string{"SQL", "NoSQL", "PostgreSQL", "MongoDB", "Database Design", "Query Optimization"},
		},
		{
			Name:          "Cybersecurity",
			Platforms:     []string{"owasp", "kali", "hackthebox", "tryhackme"},
			Keywords:      []string{"security", "encryption", "penetration", "vulnerability", "hacking", "cyber", "authentication"},
			Subcategories: []string{"Web Security", "Network Security", "Cryptography", "Penetration Testing", "OWASP"},
		},
		{
			Name:          "Design & UX",
			Platforms:     []string{"figma", "adobe", "dribbble", "behance", "uxdesign"},
			Keywords:      []string{"design", "ui", "ux", "figma", "photoshop", "prototype", "wireframe", "user experience"},
			Subcategories: []string{"UI Design", "UX Research", "Prototyping", "Design Systems", "Accessibility"},
		},
		{
			Name:          "Programming Fundamentals",
			Platforms:     []string{"leetcode", "hackerrank", "codewars", "exercism", "geeksforgeeks"},
			Keywords:      []string{"algorithm", "data structure", "coding", "programming", "leetcode", "problem solving"},
			Subcategories: []string{"Algorithms", "Data Structures", "Problem Solving", "Competitive Programming"},
		},
	}
}

// LearningPlatforms 资源探测用的平台子串表（大小写不敏感匹配 URL）
func LearningPlatforms() []string {
	return []string{
		"youtube.com/watch", "udemy.com", "coursera.org", "edx.org", "linkedin.com/learning",
		"pluralsight.com", "codecademy.com", "freecodecamp.org", "khanacademy.org",
		"w3schools.com", "mdn", "stackoverflow.com", "geeksforgeeks.org", "tutorialspoint.com",
		"medium.com", "dev.to", "hashnode.com", "css-tricks.com", "smashingmagazine.com",
		"github.com", "gitlab.com", "docs.", "documentation", "tutorial", "learn", "course",
	}
}

// LearningKeywords 资源探测用的标题关键词表
func LearningKeywords() []string {
	return []string{"tutorial", "guide", "learn", "course", "documentation", "docs", "how to", "introduction to"}
}
