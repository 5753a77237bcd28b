package question

import "time"

// SampleQuestions returns a small starter catalog for seeding a fresh
// database. Real deployments load their catalog from an external source.
func SampleQuestions() []Question {
	created := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	mk := func(id string, exam Exam, subject, topic string, diff Difficulty, prompt string, options []string, correct int, solveTime int) Question {
		return Question{
			ID:                id,
			Exam:              exam,
			Subject:           subject,
			Topic:             topic,
			Difficulty:        diff,
			Prompt:            prompt,
			Options:           options,
			CorrectAnswer:     correct,
			ExpectedSolveTime: solveTime,
			Version:           1,
			CreatedAt:         created,
			UpdatedAt:         created,
		}
	}

	return []Question{
		mk("gate_dsa_easy_1", "GATE", "Data Structures", "Arrays", Easy,
			"What is the time complexity of accessing an element in an array by index?",
			[]string{"O(1)", "O(log n)", "O(n)", "O(n log n)"}, 0, 45),
		mk("gate_dsa_easy_2", "GATE", "Data Structures", "Stacks", Easy,
			"Which operation is NOT supported in O(1) on a standard stack?",
			[]string{"push", "pop", "peek", "search"}, 3, 60),
		mk("gate_dsa_medium_1", "GATE", "Data Structures", "Trees", Medium,
			"The number of leaf nodes in a full binary tree with n internal nodes is:",
			[]string{"n", "n+1", "2n", "n-1"}, 1, 90),
		mk("gate_algo_medium_1", "GATE", "Algorithms", "Sorting", Medium,
			"Which sorting algorithm has the best worst-case comparison complexity?",
			[]string{"Quicksort", "Heapsort", "Insertion sort", "Bubble sort"}, 1, 90),
		mk("gate_algo_hard_1", "GATE", "Algorithms", "Dynamic Programming", Hard,
			"The longest common subsequence of two strings of lengths m and n can be computed in:",
			[]string{"O(m+n)", "O(mn)", "O(m^2 n^2)", "O(2^n)"}, 1, 150),
		mk("gate_os_medium_1", "GATE", "Operating Systems", "Scheduling", Medium,
			"Which scheduling policy can cause starvation?",
			[]string{"Round robin", "FCFS", "Priority scheduling", "None of these"}, 2, 80),
		mk("cat_quant_easy_1", "CAT", "Quantitative Aptitude", "Percentages", Easy,
			"If a price increases by 25% and then decreases by 20%, the net change is:",
			[]string{"+5%", "0%", "-5%", "+10%"}, 1, 60),
		mk("cat_quant_medium_1", "CAT", "Quantitative Aptitude", "Ratios", Medium,
			"A:B = 2:3 and B:C = 4:5. A:C equals:",
			[]string{"8:15", "2:5", "3:5", "6:15"}, 0, 75),
		mk("cat_verbal_easy_1", "CAT", "Verbal Ability", "Vocabulary", Easy,
			"Choose the word closest in meaning to 'laconic':",
			[]string{"verbose", "terse", "lazy", "loud"}, 1, 40),
		mk("cat_verbal_hard_1", "CAT", "Verbal Ability", "Reading Comprehension", Hard,
			"An author's tone described as 'sardonic' is best characterized as:",
			[]string{"earnest", "mocking", "neutral", "celebratory"}, 1, 120),
		mk("cat_dilr_medium_1", "CAT", "Data Interpretation", "Charts", Medium,
			"A pie chart sector of 72 degrees represents what share of the whole?",
			[]string{"15%", "18%", "20%", "25%"}, 2, 70),
		mk("cat_dilr_hard_1", "CAT", "Data Interpretation", "Logical Reasoning", Hard,
			"In a round-robin tournament of 8 teams, the total number of matches is:",
			[]string{"28", "56", "64", "36"}, 0, 110),
	}
}
