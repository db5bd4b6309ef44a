package taxonomy

// Versioned static taxonomy data. These tables are loaded once into a Config
// and never mutated at runtime; classification requires no external I/O.

var dataScienceTerms = []string{
	"machine learning", "deep learning", "tensorflow", "pytorch", "keras",
	"scikit", "sklearn", "pandas", "numpy", "scipy", "matplotlib", "seaborn",
	"nlp", "natural language processing", "computer vision", "opencv",
	"data science", "data analysis", "data mining", "neural network",
	"xgboost", "lightgbm", "jupyter", "spark ml", "mlflow", "hugging face",
	"transformers", "llm", "langchain", "generative ai", "reinforcement learning",
}

var frontendTerms = []string{
	"react", "angular", "vue", "svelte", "next.js", "nextjs", "nuxt",
	"javascript", "typescript", "jquery", "redux", "webpack", "vite",
	"tailwind", "bootstrap", "material ui", "sass", "scss", "css", "html",
	"ember", "backbone", "gatsby", "remix", "astro", "web components",
}

var backendTerms = []string{
	"node.js", "nodejs", "express", "nestjs", "django", "flask", "fastapi",
	"spring", "rails", "laravel", "asp.net", ".net core", "gin gonic",
	"fiber", "grpc", "graphql", "rest api", "microservices", "phoenix",
	"ktor", "quarkus", "micronaut", "serverless framework",
}

var databaseTerms = []string{
	"postgresql", "postgres", "mysql", "mariadb", "mongodb", "redis",
	"cassandra", "dynamodb", "elasticsearch", "sqlite", "oracle db",
	"sql server", "neo4j", "couchbase", "influxdb", "clickhouse",
	"snowflake", "bigquery", "redshift", "cockroachdb", "memcached",
}

var testingTerms = []string{
	"selenium", "cypress", "playwright", "jest", "mocha", "junit", "pytest",
	"testng", "cucumber", "postman", "jmeter", "unit testing",
	"integration testing", "test automation", "tdd", "bdd", "qa automation",
	"load testing", "testify", "rspec", "vitest",
}

// Language names use word-boundary matching; this table runs after the
// framework tables in the cascade.
var languageTerms = []string{
	"python", "java", "golang", "go", "c++", "c#", "ruby", "php", "swift",
	"kotlin", "rust", "scala", "perl", "haskell", "elixir", "erlang", "dart",
	"r", "matlab", "objective-c", "clojure", "groovy", "lua", "fortran",
	"cobol", "bash", "shell scripting", "sql",
}

var cloudTerms = []string{
	"aws", "amazon web services", "azure", "gcp", "google cloud", "docker",
	"kubernetes", "k8s", "terraform", "ansible", "jenkins", "circleci",
	"github actions", "gitlab ci", "ci/cd", "helm", "prometheus", "grafana",
	"cloudformation", "pulumi", "openshift", "ec2", "s3", "lambda",
	"cloud run", "fargate", "istio", "argocd", "datadog", "new relic",
}

var toolsTerms = []string{
	"git", "github", "gitlab", "bitbucket", "jira", "confluence", "slack",
	"figma", "linux", "unix", "nginx", "apache", "kafka", "rabbitmq",
	"airflow", "tableau", "power bi", "excel", "salesforce", "sap",
	"vim", "intellij", "vs code", "maven", "gradle", "npm", "yarn",
}

var softSkillTerms = []string{
	"leadership", "communication", "teamwork", "collaboration",
	"problem solving", "problem-solving", "critical thinking", "mentoring",
	"mentorship", "project management", "time management", "adaptability",
	"stakeholder management", "cross-functional", "public speaking",
	"conflict resolution", "decision making", "attention to detail",
}

// displayOverrides maps normalized tokens to canonical display capitalization.
// Tokens absent here fall back to title-casing each word.
var displayOverrides = map[string]string{
	"javascript":    "JavaScript",
	"typescript":    "TypeScript",
	"node.js":       "Node.js",
	"nodejs":        "Node.js",
	"next.js":       "Next.js",
	"nextjs":        "Next.js",
	"vue.js":        "Vue.js",
	"react.js":      "React",
	"reactjs":       "React",
	"golang":        "Go",
	"go":            "Go",
	"postgresql":    "PostgreSQL",
	"postgres":      "PostgreSQL",
	"mysql":         "MySQL",
	"mongodb":       "MongoDB",
	"dynamodb":      "DynamoDB",
	"graphql":       "GraphQL",
	"grpc":          "gRPC",
	"php":           "PHP",
	"html":          "HTML",
	"css":           "CSS",
	"sql":           "SQL",
	"nosql":         "NoSQL",
	"aws":           "AWS",
	"gcp":           "GCP",
	"ci/cd":         "CI/CD",
	"k8s":           "Kubernetes",
	"kubernetes":    "Kubernetes",
	"devops":        "DevOps",
	"api":           "API",
	"rest api":      "REST API",
	"ios":           "iOS",
	"macos":         "macOS",
	"c++":           "C++",
	"c#":            "C#",
	"asp.net":       "ASP.NET",
	".net":          ".NET",
	"github":        "GitHub",
	"gitlab":        "GitLab",
	"github actions": "GitHub Actions",
	"rabbitmq":      "RabbitMQ",
	"elasticsearch": "Elasticsearch",
	"tensorflow":    "TensorFlow",
	"pytorch":       "PyTorch",
	"scikit-learn":  "scikit-learn",
	"numpy":         "NumPy",
	"opencv":        "OpenCV",
	"matlab":        "MATLAB",
	"nlp":           "NLP",
	"llm":           "LLM",
	"jquery":        "jQuery",
	"intellij":      "IntelliJ",
	"openshift":     "OpenShift",
	"cloudformation": "CloudFormation",
	"circleci":      "CircleCI",
	"jmeter":        "JMeter",
	"junit":         "JUnit",
	"testng":        "TestNG",
	"mlflow":        "MLflow",
	"xgboost":       "XGBoost",
	"clickhouse":    "ClickHouse",
	"cockroachdb":   "CockroachDB",
	"influxdb":      "InfluxDB",
	"bigquery":      "BigQuery",
	"powershell":    "PowerShell",
	"tdd":           "TDD",
	"bdd":           "BDD",
	"sap":           "SAP",
	"vs code":       "VS Code",
	"npm":           "npm",
}

// DefaultConfig builds the standard nine-category cascade. The returned
// Config is independent per call; treat it as immutable once constructed.
func DefaultConfig() *Config {
	overrides := make(map[string]string, len(displayOverrides))
	for k, v := range displayOverrides {
		overrides[k] = v
	}

	return &Config{
		Rules: []Rule{
			{Category: CategoryDataScience, Kind: MatchContains, Terms: dataScienceTerms},
			{Category: CategoryFrontend, Kind: MatchContains, Terms: frontendTerms},
			{Category: CategoryBackend, Kind: MatchContains, Terms: backendTerms},
			{Category: CategoryDatabase, Kind: MatchContains, Terms: databaseTerms},
			{Category: CategoryTesting, Kind: MatchContains, Terms: testingTerms},
			{Category: CategoryLanguage, Kind: MatchWord, Terms: languageTerms},
			{Category: CategoryCloud, Kind: MatchContains, Terms: cloudTerms},
			{Category: CategoryTools, Kind: MatchContains, Terms: toolsTerms},
			{Category: CategorySoft, Kind: MatchContains, Terms: softSkillTerms},
		},
		DisplayOverrides: overrides,
	}
}
