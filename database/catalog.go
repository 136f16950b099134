package database

import "api/models"

// QuestionCatalog is the static cybersecurity quiz. Position fixes the
// presentation order.
var QuestionCatalog = []models.Question{
	{
		Position: 1,
		Prompt:   "What is the most common type of phishing attack?",
		Options: []string{
			"Email phishing",
			"SMS phishing (Smishing)",
			"Voice phishing (Vishing)",
			"Social media phishing",
		},
		CorrectAnswer: 0,
		Explanation:   "Email phishing remains the most common type, accounting for over 90% of phishing attacks.",
		Category:      "Phishing",
		Difficulty:    models.DifficultyEasy,
	},
	{
		Position: 2,
		Prompt:   "Which of the following is NOT a good password practice?",
		Options: []string{
			"Using a password manager",
			"Enabling multi-factor authentication",
			"Using the same password for multiple accounts",
			"Creating passwords with 12+ characters",
		},
		CorrectAnswer: 2,
		Explanation:   "Using the same password across multiple accounts is dangerous - if one account is breached, all are at risk.",
		Category:      "Passwords",
		Difficulty:    models.DifficultyEasy,
	},
	{
		Position: 3,
		Prompt:   "What does MFA stand for?",
		Options: []string{
			"Multiple File Authentication",
			"Multi-Factor Authentication",
			"Master File Access",
			"Managed Firewall Application",
		},
		CorrectAnswer: 1,
		Explanation:   "MFA stands for Multi-Factor Authentication, a security method requiring two or more verification factors.",
		Category:      "Authentication",
		Difficulty:    models.DifficultyEasy,
	},
	{
		Position: 4,
		Prompt:   "What is the primary purpose of a firewall?",
		Options: []string{
			"To encrypt data",
			"To monitor and control network traffic",
			"To backup files",
			"To compress data",
		},
		CorrectAnswer: 1,
		Explanation:   "A firewall monitors and controls incoming and outgoing network traffic based on predetermined security rules.",
		Category:      "Network Security",
		Difficulty:    models.DifficultyMedium,
	},
	{
		Position: 5,
		Prompt:   "Which encryption standard is currently recommended for Wi-Fi security?",
		Options: []string{
			"WEP",
			"WPA",
			"WPA2",
			"WPA3",
		},
		CorrectAnswer: 3,
		Explanation:   "WPA3 is the latest and most secure Wi-Fi encryption standard, offering improved security over WPA2.",
		Category:      "Encryption",
		Difficulty:    models.DifficultyMedium,
	},
	{
		Position: 6,
		Prompt:   "What is ransomware?",
		Options: []string{
			"Software that speeds up your computer",
			"Malware that encrypts files and demands payment",
			"A type of antivirus program",
			"A password manager",
		},
		CorrectAnswer: 1,
		Explanation:   "Ransomware is malicious software that encrypts a victim's files, making them inaccessible until a ransom is paid.",
		Category:      "Malware",
		Difficulty:    models.DifficultyEasy,
	},
	{
		Position: 7,
		Prompt:   "What is a zero-day vulnerability?",
		Options: []string{
			"A bug that was fixed yesterday",
			"A security flaw unknown to the software vendor",
			"A vulnerability that exists for zero days",
			"An outdated security patch",
		},
		CorrectAnswer: 1,
		Explanation:   "A zero-day vulnerability is a security flaw that is unknown to the software vendor and has no available patch.",
		Category:      "Vulnerabilities",
		Difficulty:    models.DifficultyHard,
	},
	{
		Position: 8,
		Prompt:   "What does VPN stand for?",
		Options: []string{
			"Virtual Private Network",
			"Very Private Network",
			"Verified Public Network",
			"Virtual Protection Node",
		},
		CorrectAnswer: 0,
		Explanation:   "VPN stands for Virtual Private Network, which creates a secure, encrypted connection over a less secure network.",
		Category:      "Network Security",
		Difficulty:    models.DifficultyEasy,
	},
	{
		Position: 9,
		Prompt:   "Which of these is an example of social engineering?",
		Options: []string{
			"SQL injection",
			"DDoS attack",
			"Pretexting to gain unauthorized information",
			"Buffer overflow",
		},
		CorrectAnswer: 2,
		Explanation:   "Social engineering involves manipulating people to divulge confidential information. Pretexting is creating a fabricated scenario to gain trust.",
		Category:      "Social Engineering",
		Difficulty:    models.DifficultyMedium,
	},
	{
		Position: 10,
		Prompt:   "What is the purpose of HTTPS?",
		Options: []string{
			"To make websites load faster",
			"To secure data transmission between browser and server",
			"To block advertisements",
			"To store passwords",
		},
		CorrectAnswer: 1,
		Explanation:   "HTTPS encrypts data transmitted between your browser and the web server, protecting it from eavesdropping.",
		Category:      "Web Security",
		Difficulty:    models.DifficultyEasy,
	},
	{
		Position: 11,
		Prompt:   "What is a brute force attack?",
		Options: []string{
			"Physical damage to servers",
			"Trying many passwords until one works",
			"Overloading a server with traffic",
			"Installing malware through email",
		},
		CorrectAnswer: 1,
		Explanation:   "A brute force attack involves systematically trying many passwords or passphrases until the correct one is found.",
		Category:      "Attack Types",
		Difficulty:    models.DifficultyMedium,
	},
	{
		Position: 12,
		Prompt:   "What is the principle of least privilege?",
		Options: []string{
			"Users should have only the minimum access needed",
			"Everyone should have admin rights",
			"Passwords should be as short as possible",
			"Security measures should be minimal",
		},
		CorrectAnswer: 0,
		Explanation:   "The principle of least privilege means users should have only the minimum levels of access needed to perform their job functions.",
		Category:      "Access Control",
		Difficulty:    models.DifficultyMedium,
	},
	{
		Position: 13,
		Prompt:   "What is SQL injection?",
		Options: []string{
			"A medical procedure",
			"A code injection attack on databases",
			"A type of encryption",
			"A network protocol",
		},
		CorrectAnswer: 1,
		Explanation:   "SQL injection is a code injection technique that exploits vulnerabilities in database-driven applications.",
		Category:      "Web Security",
		Difficulty:    models.DifficultyHard,
	},
	{
		Position: 14,
		Prompt:   "What should you do if you receive a suspicious email?",
		Options: []string{
			"Click all links to investigate",
			"Reply asking if it's legitimate",
			"Report it and delete it",
			"Forward it to all your contacts",
		},
		CorrectAnswer: 2,
		Explanation:   "Suspicious emails should be reported to your IT department or email provider and then deleted without clicking any links.",
		Category:      "Phishing",
		Difficulty:    models.DifficultyEasy,
	},
	{
		Position: 15,
		Prompt:   "What is two-factor authentication (2FA)?",
		Options: []string{
			"Using two different passwords",
			"Logging in twice",
			"Using two independent verification methods",
			"Having two user accounts",
		},
		CorrectAnswer: 2,
		Explanation:   "2FA requires two independent authentication factors, typically something you know (password) and something you have (phone).",
		Category:      "Authentication",
		Difficulty:    models.DifficultyEasy,
	},
}
