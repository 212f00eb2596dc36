package services

import (
	"fmt"
	"strings"

	"cyber-learning-system/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// SeedService loads the bundled cybersecurity course content: three quizzes
// with questions, the mini-game catalog and the red/white team challenges.
type SeedService struct {
	DB      *gorm.DB
	Content *ContentService
	Users   *UserService
}

func NewSeedService(db *gorm.DB) *SeedService {
	return &SeedService{DB: db, Content: NewContentService(db), Users: NewUserService(db)}
}

var titleCaser = cases.Title(language.English)

// categoryLabel turns internal category keys like "penetration_testing" into
// display labels ("Penetration Testing").
func categoryLabel(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}

type seedQuestion struct {
	text    string
	options []string
	correct int
	points  int
}

// SeedLearningContent is idempotent-ish in the simplest way: it refuses to run
// when quizzes already exist.
func (s *SeedService) SeedLearningContent() (*models.User, error) {
	var existing int64
	if err := s.DB.Model(&models.Quiz{}).Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, validationErr("seed", "content already seeded")
	}

	user := &models.User{
		Username:  "cybersec_learner",
		FirstName: "Alex",
		LastName:  "Security",
		Email:     "alex@cybersec.learn",
	}
	if err := s.Users.CreateUser(user); err != nil {
		return nil, err
	}

	if err := s.seedQuiz("Cybersecurity Fundamentals",
		"Essential cybersecurity concepts for beginners", "easy", 45, []seedQuestion{
			{"What does the 'S' in HTTPS stand for?",
				[]string{"Server", "Secure", "System", "Standard"}, 1, 10},
			{"Which of the following is considered a strong password?",
				[]string{"password123", "123456", "P@ssw0rd#2024!", "qwerty"}, 2, 10},
			{"What is phishing?",
				[]string{"A type of malware", "A method to catch fish", "A social engineering attack", "A firewall technique"}, 2, 10},
			{"Which protocol is used for secure email transmission?",
				[]string{"HTTP", "FTP", "SMTP", "TLS/SSL"}, 3, 10},
			{"What is the primary purpose of a firewall?",
				[]string{"Speed up internet", "Block malicious traffic", "Store passwords", "Encrypt files"}, 1, 10},
		}); err != nil {
		return nil, err
	}

	if err := s.seedQuiz("Network Security & Threats",
		"Advanced network security concepts and threat analysis", "medium", 60, []seedQuestion{
			{"Which type of attack involves overwhelming a server with traffic?",
				[]string{"SQL Injection", "Cross-Site Scripting", "DDoS Attack", "Man-in-the-Middle"}, 2, 15},
			{"What is the main difference between symmetric and asymmetric encryption?",
				[]string{"Speed of encryption", "Key usage", "Algorithm complexity", "File size"}, 1, 15},
			{"Which of these is NOT a common vulnerability in web applications?",
				[]string{"SQL Injection", "Buffer Overflow", "CSRF", "Physical Access"}, 3, 15},
			{"What does IDS stand for in cybersecurity?",
				[]string{"Internet Detection System", "Intrusion Detection System", "Internal Defense System", "Identity Defense Service"}, 1, 15},
			{"Which hashing algorithm is considered most secure currently?",
				[]string{"MD5", "SHA-1", "SHA-256", "CRC32"}, 2, 15},
		}); err != nil {
		return nil, err
	}

	if err := s.seedQuiz("Advanced Cyber Defense",
		"Expert-level cybersecurity challenges and advanced topics", "hard", 90, []seedQuestion{
			{"In a zero-day exploit, what does 'zero-day' refer to?",
				[]string{"Time to patch", "Days since discovery", "Attack duration", "Vulnerability lifespan"}, 0, 20},
			{"Which technique is used in advanced persistent threats (APTs)?",
				[]string{"Quick in-and-out attacks", "Long-term stealthy presence", "Brute force attacks", "Social media manipulation"}, 1, 20},
			{"What is the primary goal of threat hunting?",
				[]string{"Patch vulnerabilities", "Proactively find threats", "Train employees", "Install security tools"}, 1, 20},
			{"Which framework is commonly used for incident response?",
				[]string{"OWASP", "NIST", "ISO 27001", "COBIT"}, 1, 20},
			{"What is lateral movement in cybersecurity?",
				[]string{"Moving between network segments", "Physical security movement", "Data transfer protocols", "Firewall configuration"}, 0, 20},
		}); err != nil {
		return nil, err
	}

	activities := []models.Activity{
		{
			Title:        "Security Term Scramble",
			Description:  "Unscramble cybersecurity terms and strengthen your security vocabulary.",
			Type:         models.ActivityWordScramble,
			Category:     "Cybersecurity",
			Difficulty:   "easy",
			TimeEstimate: "5-10 min",
			MaxScore:     100,
			IsNew:        true,
			GameData: map[string]interface{}{
				"words": []string{"FIREWALL", "ENCRYPTION", "MALWARE", "PHISHING", "AUTHENTICATION", "VULNERABILITY", "INTRUSION", "CRYPTOGRAPHY"},
			},
		},
		{
			Title:        "Cyber Threat Sequence",
			Description:  "Identify patterns in cybersecurity attack sequences and improve threat detection skills.",
			Type:         models.ActivityNumberPuzzle,
			Category:     "Cybersecurity",
			Difficulty:   "medium",
			TimeEstimate: "10-15 min",
			MaxScore:     150,
			IsPopular:    true,
			GameData: map[string]interface{}{
				"puzzles": []map[string]interface{}{
					{"sequence": []int{1, 2, 4, 8, 16}, "answer": 32, "hint": "Binary progression"},
					{"sequence": []int{80, 443, 22, 21}, "answer": 25, "hint": "Common port numbers"},
					{"sequence": []int{128, 192, 256, 384}, "answer": 512, "hint": "Encryption key sizes"},
				},
			},
		},
		{
			Title:        "Security Symbol Match",
			Description:  "Match cybersecurity symbols and icons to improve pattern recognition skills.",
			Type:         models.ActivityMemoryMatch,
			Category:     "Cybersecurity",
			Difficulty:   "easy",
			TimeEstimate: "3-8 min",
			MaxScore:     200,
			GameData: map[string]interface{}{
				"gridSize": 4,
				"symbols":  []string{"🔒", "🛡️", "🔑", "⚠️", "🚨", "🔐", "🛠️", "🎯"},
			},
		},
		{
			Title:        "Password Cracking Challenge",
			Description:  "Learn about password security by understanding common attack patterns.",
			Type:         models.ActivityWordScramble,
			Category:     "Cybersecurity",
			Difficulty:   "hard",
			TimeEstimate: "8-12 min",
			MaxScore:     120,
			GameData: map[string]interface{}{
				"words": []string{"BRUTEFORCE", "DICTIONARY", "RAINBOW", "SALTING", "HASHING", "KEYLOGGER"},
			},
		},
	}
	for i := range activities {
		if err := s.Content.CreateActivity(&activities[i]); err != nil {
			return nil, err
		}
	}

	challenges := []models.TeamChallenge{
		{
			Title:       "Perimeter Breach Simulation",
			Description: "Probe a mock corporate network and document every way in.",
			Team:        models.TeamRed,
			Category:    categoryLabel("penetration_testing"),
			Difficulty:  "medium",
			Type:        "simulation",
			MaxScore:    150,
			UnlockLevel: 1,
			Content: map[string]interface{}{
				"stages": []string{"recon", "scanning", "exploitation", "reporting"},
			},
		},
		{
			Title:       "Social Engineering Playbook",
			Description: "Craft and evaluate pretext scenarios against a training target.",
			Team:        models.TeamRed,
			Category:    categoryLabel("social_engineering"),
			Difficulty:  "hard",
			Type:        "quiz",
			MaxScore:    100,
			UnlockLevel: 2,
		},
		{
			Title:       "Incident Triage Drill",
			Description: "Classify a stream of alerts and contain the live intrusion.",
			Team:        models.TeamWhite,
			Category:    categoryLabel("incident_response"),
			Difficulty:  "medium",
			Type:        "simulation",
			MaxScore:    150,
			UnlockLevel: 1,
			Content: map[string]interface{}{
				"alerts": 12,
			},
		},
		{
			Title:       "Log Forensics Lab",
			Description: "Trace an attacker's footsteps through server logs.",
			Team:        models.TeamWhite,
			Category:    categoryLabel("digital_forensics"),
			Difficulty:  "hard",
			Type:        "lab",
			MaxScore:    120,
			UnlockLevel: 2,
		},
	}
	for i := range challenges {
		if err := s.Content.CreateTeamChallenge(&challenges[i]); err != nil {
			return nil, err
		}
	}

	fmt.Println("✅ Cybersecurity learning content seeded")
	return user, nil
}

func (s *SeedService) seedQuiz(title, description, difficulty string, timeLimit int, questions []seedQuestion) error {
	quiz := &models.Quiz{
		Title:       title,
		Description: description,
		Category:    "Cybersecurity",
		Difficulty:  difficulty,
		TimeLimit:   timeLimit,
	}
	if err := s.Content.CreateQuiz(quiz); err != nil {
		return err
	}
	for i, q := range questions {
		question := &models.Question{
			QuizID:        quiz.ID,
			QuestionText:  q.text,
			Options:       q.options,
			CorrectAnswer: q.correct,
			Points:        q.points,
			Order:         i + 1,
		}
		if err := s.Content.CreateQuestion(question); err != nil {
			return err
		}
	}
	return nil
}
