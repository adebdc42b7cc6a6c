package catalog

import "github.com/abhiramvad/portfolio/internal/theme"

// DefaultName is the catalog served when none is configured.
const DefaultName = "main"

var builtins = map[string]func() *Catalog{
	"main":      mainCatalog,
	"github-io": githubIOCatalog,
}

func socialLinks() []Link {
	return []Link{
		{Kind: LinkGitHub, URL: "https://github.com/abhiramvad", Label: "GitHub"},
		{Kind: LinkLinkedIn, URL: "https://linkedin.com/in/abhiram-vadlapatla", Label: "LinkedIn"},
		{Kind: LinkEmail, URL: "mailto:v.abhiram97@gmail.com", Label: "Email"},
	}
}

func mainCatalog() *Catalog {
	return &Catalog{
		Name:        "main",
		DefaultDark: true,
		Profile: Profile{
			Name:     "Abhiram Vadlapatla",
			Headline: "Senior Software Development Engineer",
			Summary:  "Full stack software engineer with 5+ years of experience in building scalable web applications and Agentic AI-driven solutions to deliver impactful user experiences and accelerate business outcomes",
			Photo:    "dp.jpeg",
			Resume:   "SDE Resume Final May 2025.pdf",
			Links:    socialLinks(),
		},
		Projects: []ProjectEntry{
			{
				Title:    "Training a Custom GPT Model",
				Subtitle: "Python Data Science Stack Using GPT-2",
				Description: []string{
					"Fine-tuned a 124M-parameter GPT-2 model on curated Python datasets, achieving 56.06 perplexity.",
					"Implemented custom loss functions and learning rate schedules prioritizing data science tokens.",
				},
				Link: "#",
				Tags: []string{"Python", "NLP", "Machine Learning"},
			},
			{
				Title:    "Model Compression for Video Understanding",
				Subtitle: "Deploying AI on Edge Devices",
				Description: []string{
					"Optimized MobileNet and Timesformer models, achieving 4x size reduction through quantization.",
					"Improved model deployment efficiency for cloud and on-device performance.",
				},
				Link: "#",
				Tags: []string{"Video AI", "Optimization", "Edge Computing"},
			},
			{
				Title:    "Soul Machines Conversational AI",
				Subtitle: "AI-driven Conversational Agent",
				Description: []string{
					"Developed conversational AI for healthcare use, leveraging advanced NLP and soul machine technologies.",
					"Integrated APIs to deliver personalized experiences with robust backend architecture.",
				},
				Link: "https://ssa-soul-machines-dev.us-east.philips-healthsuite.com/access/g00dsl33p4all",
				Tags: []string{"NLP", "AI", "Backend"},
			},
			{
				Title:    "Philips SmartSleep Analyzer",
				Subtitle: "Advanced Sleep Analysis Tool",
				Description: []string{
					"Developed data pipelines for user sleep pattern analysis.",
					"Integrated ML models to offer personalized sleep insights.",
				},
				Link: "https://www.smartsleep-analyzer.philips.com/",
				Tags: []string{"Python", "Flask", "ML"},
			},
		},
		Experience: []ExperienceEntry{
			{
				Company: "Goldman Sachs",
				Role:    "Software Engineer 3 (Vice President)",
				Period:  "Jul 2022 - Dec 2023",
				Achievements: []string{
					"Implemented IAM knowledge bot using React, Socket IO, Flask, Langchain, and GPT-3.5 LLM for 30% faster query resolution.",
					"Accelerated go-live time to production from 1 week to 48 hours by facilitating instant thematic customizations with a React Drag and Drop live preview tool.",
					"Achieved 100% data transparency and real-time analytics within a 1-minute window by implementing a data ingestion pipeline processing 2GB of data hourly.",
					"Shipped a high-performance JS analytics library to production using web beacon API for client-side observability, boosting dev efficiency 1.5x.",
					"Enhanced the security profile of the IAM platform by integrating ThreatMetrix into the Spring Boot server, achieving a 30% improvement in fraudulent login detection.",
					"Keynote speaker at Goldman Sachs, sharing insights with 200 developers on Identity and Access Management.",
				},
			},
			{
				Company: "Philips Healthcare",
				Role:    "Software Engineer 3",
				Period:  "Jan 2018 - Jun 2022",
				Achievements: []string{
					"Led development of conversational AI system (SmartSleep Analyzer) using RASA SDK and custom NLU/NLP models, achieving a 50% increase in user engagement.",
					"Developed a custom website tracking system to process clickstream data, achieving an 80% growth in conversion rate.",
					"Implemented database integration with Flask, SQLAlchemy, and Alembic, reducing deployment times by 50%.",
					"Integrated New Relic with Flask app to support APM and latency metrics, achieving a 45% improvement in performance monitoring.",
					"Improved API service adoption by 20% by designing an API monetization ecosystem and developer portal using Kong API gateway.",
					"Reduced security and traffic control issues for REST APIs by 70% through rate-limiting plugins, CORS enforcers, and bot detection.",
				},
			},
		},
		Skills: []SkillCategory{
			{
				Title:  "Programming Languages",
				Skills: []string{"Python", "Java", "Typescript", "Javascript", "Bash"},
				Accent: theme.AccentPurple,
			},
			{
				Title:  "Backend Frameworks/Libraries",
				Skills: []string{"Flask", "Spring Boot", "Node.js", "OAuth2.0", "Langchain"},
				Accent: theme.AccentBlue,
			},
			{
				Title:  "UI Frameworks/Libraries",
				Skills: []string{"React", "Angular", "NX", "HTML", "CSS", "SCSS", "Bootstrap", "Webpack", "Yarn", "Copilot SDK"},
				Accent: theme.AccentGreen,
			},
			{
				Title:  "Databases",
				Skills: []string{"SQL Server", "Prometheus", "Elasticsearch", "MySQL", "Postgres", "BigQuery", "SQLite"},
				Accent: theme.AccentOrange,
			},
			{
				Title:  "Cloud/SaaS",
				Skills: []string{"Terraform", "Cloudfoundry", "AWS ECS", "Docker", "Kubernetes", "Lambda", "AWS Kinesis", "Fluent Bit", "NewRelic", "Grafana", "Langsmith"},
				Accent: theme.AccentBlue,
			},
			{
				Title:  "Protocols & Certifications",
				Skills: []string{"REST", "GraphQL", "gRPC", "WebSockets", "SSE", "SMTP", "AWS Machine Learning Associate (2024)", "Deep Learning Nanodegree (Udacity, 2021)"},
				Accent: theme.AccentPurple,
			},
		},
	}
}

func githubIOCatalog() *Catalog {
	return &Catalog{
		Name:        "github-io",
		DefaultDark: false,
		Profile: Profile{
			Name:     "Abhiram Vadlapatla",
			Headline: "AI Engineer & Full Stack Developer",
			Summary:  "Crafting AI-driven solutions with expertise in Generative AI and ML Ops. Passionate about building impactful applications that merge cutting-edge AI with robust engineering.",
			Photo:    "./src/assets/dp.jpeg",
			Resume:   "./src/assets/SDE Resume Final Dec 2025.pdf",
			Links:    socialLinks(),
		},
		Projects: []ProjectEntry{
			{
				Title:    "EpicDiffusion Playground",
				Subtitle: "Text to Video Generation App",
				Description: []string{
					"Created innovative text-to-video pipeline with I2VGen and Stable Diffusion XL",
					"Enhanced model pipeline achieving CLIP score improvement from 0.21 to 0.26",
				},
				Link: "https://disml2024.github.io/disml-workshop-2024/assets/6_978291_86361703_Spring23_598Final_Proj_Report.pdf",
				Tags: []string{"React", "PyTorch", "Diffusers"},
			},
			{
				Title:    "Video Spotlight",
				Subtitle: "Semantic Search in Videos",
				Description: []string{
					"Built React video player with AI-powered search achieving 0.5ms latency",
					"Optimized video AI models with 4x size reduction through quantization",
				},
				Link: "https://github.com/abhiramvad/video-search-ui?tab=readme-ov-file",
				Tags: []string{"BERT", "React", "TensorFlow"},
			},
		},
		Experience: []ExperienceEntry{
			{
				Company: "Goldman Sachs",
				Role:    "Senior Software Engineer",
				Period:  "Jul 2022 - Dec 2023",
				Achievements: []string{
					"Built IAM knowledge bot with React, Socket IO, Flask, and GPT-3.5",
					"Developed high-performance JS analytics library for client-side observability",
					"Created real-time analytics pipeline processing 2GB data hourly",
				},
			},
			{
				Company: "Philips Healthcare",
				Role:    "Senior Software Engineer",
				Period:  "Apr 2020 - Jun 2022",
				Achievements: []string{
					"Increased user engagement by 50% with real-time chatbot implementation",
					"Led code quality initiatives achieving 100% test coverage",
					"Reduced deployment times by 50% through database optimization",
				},
			},
		},
		Skills: []SkillCategory{
			{
				Title:  "AI & Machine Learning",
				Skills: []string{"PyTorch", "Diffusers", "Transformers", "LangChain", "CoreML", "RASA NLP"},
				Accent: theme.AccentPurple,
			},
			{
				Title:  "Languages",
				Skills: []string{"Python", "TypeScript", "Java", "C++"},
				Accent: theme.AccentBlue,
			},
			{
				Title:  "Frontend",
				Skills: []string{"React", "Angular", "TypeScript", "Tailwind"},
				Accent: theme.AccentGreen,
			},
			{
				Title:  "Backend & Cloud",
				Skills: []string{"Flask", "Django", "AWS", "Kubernetes"},
				Accent: theme.AccentOrange,
			},
		},
	}
}
