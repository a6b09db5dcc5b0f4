package seed

import "sciquest-service/internal/domain"

// QuizFixture pairs a quiz with its questions, keyed by experiment title
// because ids are assigned by the target store.
type QuizFixture struct {
	ExperimentTitle string
	Quiz            domain.Quiz
	Questions       []domain.QuizQuestion
}

// Experiments returns the fixture catalog: two experiments per science
// category, spanning all three curriculum stages.
func Experiments() []domain.Experiment {
	return []domain.Experiment{
		{
			Title:           "Growing Beans: Watch Seeds Sprout",
			Description:     "Observe the life cycle of a bean plant from seed to sprout. Learn about germination, root systems, and plant growth in this hands-on biology experiment.",
			Category:        "Biology",
			CurriculumStage: "K-6",
			Difficulty:      "beginner",
			Duration:        20,
			MaterialsNeeded: []string{
				"Bean seeds (3-4)",
				"Clear plastic cup or jar",
				"Paper towel",
				"Water",
				"Sunny windowsill",
			},
			HouseholdItemsOnly: true,
			ThumbnailURL:       "/assets/generated_images/Biology_plant_growth_experiment_5df15ee3.png",
			Steps: []domain.ExperimentStep{
				{StepNumber: 1, Title: "Prepare the Container", Description: "Line a clear plastic cup or jar with a damp paper towel covering the inside walls."},
				{StepNumber: 2, Title: "Place the Seeds", Description: "Place 3-4 bean seeds between the paper towel and the container wall, spaced evenly so you can observe each seed."},
				{StepNumber: 3, Title: "Keep Moist and Observe", Description: "Place the container in a sunny spot, keep the towel moist daily, and record changes over 7-10 days."},
			},
			ScienceExplained: "Seeds contain everything needed to start a new plant. When water, warmth, and oxygen are present, germination begins: a root emerges first to anchor the plant and absorb water, then a shoot grows toward light while the seed leaves feed the plant until photosynthesis takes over.",
			LearningOutcomes: []string{
				"Understand the process of seed germination",
				"Observe plant life cycle stages",
				"Learn about plant structures (roots, stems, leaves)",
				"Practice scientific observation and recording",
			},
			SafetyNotes: []string{"Wash hands after handling seeds"},
		},
		{
			Title:           "Bread Mold Experiment",
			Description:     "Explore how mold grows on bread under different conditions. Investigate the factors that affect microorganism growth.",
			Category:        "Biology",
			CurriculumStage: "7-10 Life Skills",
			Difficulty:      "intermediate",
			Duration:        25,
			MaterialsNeeded: []string{
				"4 slices of bread",
				"4 plastic zip-lock bags",
				"Water spray bottle",
				"Marker for labeling",
				"Dark cupboard",
			},
			HouseholdItemsOnly: true,
			ThumbnailURL:       "/assets/generated_images/Biology_plant_growth_experiment_5df15ee3.png",
			Steps: []domain.ExperimentStep{
				{StepNumber: 1, Title: "Prepare Bread Samples", Description: "Leave one slice dry, lightly spray the second, heavily spray the third, and keep the fourth packaged as a control.", SafetyWarning: "Do not open the bags once sealed. Mold can cause allergic reactions."},
				{StepNumber: 2, Title: "Seal and Label", Description: "Seal each slice in its own zip-lock bag and label them 'Dry', 'Moist', 'Very Wet', and 'Control'."},
				{StepNumber: 3, Title: "Store and Observe", Description: "Keep all bags in a dark cupboard and observe daily for 7-10 days without opening them."},
			},
			ScienceExplained: "Mold is a fungus that reproduces through spores present everywhere in our environment. It needs moisture, warmth, food and time to grow, which is why the wet bread develops visible colonies fastest and why controlling conditions matters for food preservation.",
			LearningOutcomes: []string{
				"Understand microorganism growth requirements",
				"Learn about fungi and their characteristics",
				"Explore scientific method through controlled experiments",
				"Understand food preservation principles",
			},
			SafetyNotes: []string{
				"Never open the sealed bags after mold appears",
				"Dispose of all bags sealed in trash when finished",
				"Wash hands thoroughly if bags are touched",
			},
		},
		{
			Title:           "Volcano Eruption: Acid-Base Reaction",
			Description:     "Create a spectacular volcano eruption using household chemicals. Learn about acid-base reactions and chemical changes.",
			Category:        "Chemistry",
			CurriculumStage: "K-6",
			Difficulty:      "beginner",
			Duration:        15,
			MaterialsNeeded: []string{
				"Baking soda (2 tablespoons)",
				"White vinegar (1/2 cup)",
				"Red food coloring",
				"Dish soap (1 tablespoon)",
				"Plastic bottle or cup",
				"Tray to catch overflow",
			},
			HouseholdItemsOnly: true,
			ThumbnailURL:       "/assets/generated_images/Volcano_eruption_baking_soda_5214d055.png",
			Steps: []domain.ExperimentStep{
				{StepNumber: 1, Title: "Build Your Volcano", Description: "Place a plastic bottle or cup on a tray; optionally build a volcano shape around it with clay."},
				{StepNumber: 2, Title: "Add Ingredients", Description: "Put 2 tablespoons of baking soda into the bottle with 1 tablespoon of dish soap and a few drops of red food coloring."},
				{StepNumber: 3, Title: "Create the Eruption", Description: "Quickly pour 1/2 cup of vinegar into the bottle, step back, and watch the eruption."},
			},
			ScienceExplained: "Vinegar contains acetic acid and baking soda is a base; mixing them produces carbon dioxide gas that pushes the mixture up and out like lava. The dish soap traps the gas into foam and the food coloring completes the effect.",
			LearningOutcomes: []string{
				"Understand acid-base chemical reactions",
				"Observe gas production in a chemical reaction",
				"Learn about volcanoes and their eruptions",
				"Practice safe chemical handling",
			},
			SafetyNotes: []string{
				"Conduct experiment on a protected surface or outdoors",
				"Avoid getting mixture in eyes",
			},
		},
		{
			Title:           "Rainbow in a Jar: Density Layers",
			Description:     "Create a beautiful rainbow by layering liquids of different densities. Explore the concept of density and how it affects liquid behavior.",
			Category:        "Chemistry",
			CurriculumStage: "7-10 Life Skills",
			Difficulty:      "intermediate",
			Duration:        30,
			MaterialsNeeded: []string{
				"Tall clear glass or jar",
				"Honey",
				"Dish soap",
				"Water",
				"Vegetable oil",
				"Rubbing alcohol",
				"Food coloring (various colors)",
			},
			HouseholdItemsOnly: true,
			ThumbnailURL:       "/assets/generated_images/Chemistry_mixing_colors_experiment_b9bd8a55.png",
			Steps: []domain.ExperimentStep{
				{StepNumber: 1, Title: "Prepare Colored Liquids", Description: "Color the water blue and the rubbing alcohol red; leave honey, dish soap and oil their natural colors."},
				{StepNumber: 2, Title: "Layer from Densest to Least Dense", Description: "Pour honey first, then slowly add dish soap, colored water and vegetable oil down the side of the jar."},
				{StepNumber: 3, Title: "Add the Top Layer", Description: "Very carefully pour rubbing alcohol on top and watch the rainbow layers form.", SafetyWarning: "Keep rubbing alcohol away from heat sources and flames."},
			},
			ScienceExplained: "Different liquids have different densities, so they separate into layers with the densest at the bottom. Their molecules have different sizes and attractions, which is why oil floats on water and the layers resist mixing.",
			LearningOutcomes: []string{
				"Understand the concept of density",
				"Learn why different liquids layer",
				"Explore molecular properties of common substances",
				"Practice careful measuring and pouring techniques",
			},
		},
		{
			Title:           "Make a Rainbow with Sunlight",
			Description:     "Use water and sunlight to create your own rainbow. Learn about light refraction and the visible spectrum.",
			Category:        "Physics",
			CurriculumStage: "K-6",
			Difficulty:      "beginner",
			Duration:        10,
			MaterialsNeeded: []string{
				"Clear glass filled with water",
				"White paper or wall",
				"Sunny day or flashlight",
				"Small mirror (optional)",
			},
			HouseholdItemsOnly: true,
			ThumbnailURL:       "/assets/generated_images/Rainbow_light_refraction_prism_75fddc8c.png",
			Steps: []domain.ExperimentStep{
				{StepNumber: 1, Title: "Set Up Your Glass", Description: "Fill a clear glass about 3/4 full with water and place it near a sunny window."},
				{StepNumber: 2, Title: "Position the Paper", Description: "Hold white paper on the opposite side of the glass from the sunlight."},
				{StepNumber: 3, Title: "Find Your Rainbow", Description: "Adjust the glass and paper until a rainbow appears; tilt the glass slightly if needed."},
			},
			ScienceExplained: "White light contains all the colors of the rainbow. Passing through water, each color bends at a slightly different angle, separating the light into its spectrum - the same process that creates rainbows in the sky.",
			LearningOutcomes: []string{
				"Understand light refraction",
				"Learn about the visible spectrum",
				"Discover how rainbows form in nature",
				"Explore properties of light and color",
			},
		},
		{
			Title:           "Build a Simple Pendulum",
			Description:     "Create a pendulum and explore how length affects its swing period. Investigate the physics of motion and gravity.",
			Category:        "Physics",
			CurriculumStage: "11-12 Science Life Skills",
			Difficulty:      "advanced",
			Duration:        35,
			MaterialsNeeded: []string{
				"String or thread (1 meter)",
				"Small weight (washer, key, or similar)",
				"Ruler or tape measure",
				"Stopwatch or phone timer",
				"Pencil and support stand",
				"Notebook for recording",
			},
			HouseholdItemsOnly: true,
			ThumbnailURL:       "/assets/generated_images/Physics_forces_motion_experiment_4bf72128.png",
			Steps: []domain.ExperimentStep{
				{StepNumber: 1, Title: "Build the Pendulum", Description: "Tie a weight to one end of the string and attach the other end to a fixed support, starting at 50cm."},
				{StepNumber: 2, Title: "Measure the Period", Description: "Release the weight from about 15cm to one side and time 10 full swings; divide by 10 for the period."},
				{StepNumber: 3, Title: "Test Different Lengths", Description: "Repeat the timing at 30cm and 70cm, recording length vs. period in a table."},
				{StepNumber: 4, Title: "Analyze Your Results", Description: "Plot length against period and describe the pattern you observe."},
			},
			ScienceExplained: "A pendulum's period depends mainly on its length, not its weight or amplitude: T = 2π√(L/g). Longer pendulums swing more slowly, a principle Galileo discovered and grandfather clocks exploit.",
			LearningOutcomes: []string{
				"Understand periodic motion",
				"Learn about the relationship between length and period",
				"Practice data collection and graphing",
				"Explore real-world applications of pendulum physics",
			},
		},
		{
			Title:           "Rock and Mineral Observation",
			Description:     "Examine different rocks and minerals to learn about their properties. Develop classification skills and understand Earth's materials.",
			Category:        "Earth Science",
			CurriculumStage: "K-6",
			Difficulty:      "beginner",
			Duration:        20,
			MaterialsNeeded: []string{
				"Various rocks from outside",
				"Magnifying glass",
				"Water",
				"Vinegar",
				"Notebook and pencil",
				"Nail or coin",
			},
			HouseholdItemsOnly: true,
			ThumbnailURL:       "/assets/generated_images/Earth_science_geology_experiment_0dedf2de.png",
			Steps: []domain.ExperimentStep{
				{StepNumber: 1, Title: "Collect Rock Samples", Description: "Gather 5-6 rocks that differ in color, texture or size from your yard or a park."},
				{StepNumber: 2, Title: "Observe Physical Properties", Description: "Examine each rock with a magnifying glass, noting color, texture and hardness when scratched with a nail."},
				{StepNumber: 3, Title: "Test Reactivity", Description: "Drop a little vinegar on each rock; fizzing suggests calcium carbonate such as limestone."},
				{StepNumber: 4, Title: "Classify Your Rocks", Description: "Group rocks by similar properties and sketch each type in your notebook."},
			},
			ScienceExplained: "Rocks are made of minerals and form in different ways: igneous from cooled magma, sedimentary from compressed sediments, metamorphic under heat and pressure. Observable properties like hardness and reactivity are how geologists identify and classify them.",
			LearningOutcomes: []string{
				"Learn to identify rock properties",
				"Understand basic rock types",
				"Practice scientific observation and classification",
				"Appreciate Earth's geological diversity",
			},
		},
		{
			Title:           "Water Cycle in a Bag",
			Description:     "Create a mini water cycle to observe evaporation, condensation, and precipitation. Learn about Earth's water systems.",
			Category:        "Earth Science",
			CurriculumStage: "7-10 Life Skills",
			Difficulty:      "intermediate",
			Duration:        20,
			MaterialsNeeded: []string{
				"Clear plastic zip-lock bag",
				"Permanent marker (blue)",
				"Water (1/4 cup)",
				"Blue food coloring (optional)",
				"Tape",
				"Sunny window",
			},
			HouseholdItemsOnly: true,
			ThumbnailURL:       "/assets/generated_images/Earth_science_geology_experiment_0dedf2de.png",
			Steps: []domain.ExperimentStep{
				{StepNumber: 1, Title: "Draw the Water Cycle", Description: "Draw a sun, clouds and waves on the outside of the bag."},
				{StepNumber: 2, Title: "Add Water", Description: "Pour 1/4 cup of water with a drop of blue coloring into the bag and seal it tightly."},
				{StepNumber: 3, Title: "Hang in Sunlight", Description: "Tape the bag securely to a sunny window with the bottom slightly lower than the top."},
				{StepNumber: 4, Title: "Observe Changes", Description: "Check hourly for droplets forming inside (condensation) and water collecting at the bottom (precipitation)."},
			},
			ScienceExplained: "The sun's heat evaporates the water, the vapor condenses against the bag like clouds, and collected droplets run down as precipitation - the same cycle that moves water between Earth's oceans, atmosphere and land.",
			LearningOutcomes: []string{
				"Understand the water cycle stages",
				"Observe evaporation and condensation",
				"Learn about Earth's water systems",
				"Connect small-scale models to global processes",
			},
		},
	}
}

// Quizzes returns the seeded quizzes with their question sets.
func Quizzes() []QuizFixture {
	return []QuizFixture{
		{
			ExperimentTitle: "Growing Beans: Watch Seeds Sprout",
			Quiz: domain.Quiz{
				Title:        "Bean Growing Quiz",
				Description:  "Test your knowledge about plant growth and germination",
				PassingScore: 70,
			},
			Questions: []domain.QuizQuestion{
				{
					QuestionText:       "What process happens when a seed starts to grow?",
					Options:            []string{"Photosynthesis", "Germination", "Pollination", "Respiration"},
					CorrectAnswerIndex: 1,
					Explanation:        "Germination is the process by which a seed begins to grow into a new plant.",
					OrderIndex:         0,
				},
				{
					QuestionText:       "What do seeds need to germinate?",
					Options:            []string{"Only water", "Only sunlight", "Water and warmth", "Only soil"},
					CorrectAnswerIndex: 2,
					Explanation:        "Seeds need water and warmth to germinate. Sunlight becomes important after the plant has sprouted.",
					OrderIndex:         1,
				},
				{
					QuestionText:       "Which part of the plant grows first from a germinating seed?",
					Options:            []string{"Leaves", "Stem", "Root", "Flower"},
					CorrectAnswerIndex: 2,
					Explanation:        "The root grows first to anchor the plant and absorb water and nutrients from the soil.",
					OrderIndex:         2,
				},
				{
					QuestionText:       "Why did we use a clear container in this experiment?",
					Options:            []string{"To make it look nice", "To observe the roots growing", "Because plastic is cheap", "To keep the seeds warm"},
					CorrectAnswerIndex: 1,
					Explanation:        "A clear container allows us to observe the entire germination process, including root development.",
					OrderIndex:         3,
				},
			},
		},
		{
			ExperimentTitle: "Bread Mold Experiment",
			Quiz: domain.Quiz{
				Title:        "Bread Mold Experiment Quiz",
				Description:  "Test your understanding of mold growth and microorganisms",
				PassingScore: 70,
			},
			Questions: []domain.QuizQuestion{
				{
					QuestionText:       "What type of organism is mold?",
					Options:            []string{"Bacteria", "Virus", "Fungus", "Plant"},
					CorrectAnswerIndex: 2,
					Explanation:        "Mold is a type of fungus that grows in multicellular filaments called hyphae.",
					OrderIndex:         0,
				},
				{
					QuestionText:       "What conditions help mold grow faster?",
					Options:            []string{"Dry and cold", "Dry and warm", "Moist and warm", "Moist and cold"},
					CorrectAnswerIndex: 2,
					Explanation:        "Mold grows best in warm, moist conditions where it can break down organic matter.",
					OrderIndex:         1,
				},
				{
					QuestionText:       "Why should you never eat moldy food?",
					Options:            []string{"It tastes bad", "Mold can produce harmful toxins", "It looks unappetizing", "It has no nutrients"},
					CorrectAnswerIndex: 1,
					Explanation:        "Some molds produce mycotoxins that can be harmful to human health when consumed.",
					OrderIndex:         2,
				},
			},
		},
		{
			ExperimentTitle: "Volcano Eruption: Acid-Base Reaction",
			Quiz: domain.Quiz{
				Title:        "Volcano Eruption Quiz",
				Description:  "Check what you learned about acid-base reactions",
				PassingScore: 70,
			},
			Questions: []domain.QuizQuestion{
				{
					QuestionText:       "What gas makes the volcano erupt?",
					Options:            []string{"Oxygen", "Carbon dioxide", "Hydrogen", "Nitrogen"},
					CorrectAnswerIndex: 1,
					Explanation:        "Mixing vinegar and baking soda produces carbon dioxide gas, which pushes the foam out of the bottle.",
					OrderIndex:         0,
				},
				{
					QuestionText:       "Which ingredient is the acid in this reaction?",
					Options:            []string{"Baking soda", "Dish soap", "Vinegar", "Food coloring"},
					CorrectAnswerIndex: 2,
					Explanation:        "Vinegar contains acetic acid; baking soda is the base it reacts with.",
					OrderIndex:         1,
				},
				{
					QuestionText:       "What does the dish soap do?",
					Options:            []string{"Speeds up the reaction", "Traps gas to make more foam", "Changes the color", "Neutralizes the acid"},
					CorrectAnswerIndex: 1,
					Explanation:        "The soap traps the carbon dioxide bubbles, producing a thicker, longer-lasting foam.",
					OrderIndex:         2,
				},
			},
		},
	}
}

// CurriculumUnits returns the syllabus units experiments are tagged against.
// Unit codes follow the source data: stage prefix plus term (e.g. "s1-t1"),
// with "comp-*" codes for Life Skills components.
func CurriculumUnits() []domain.CurriculumUnit {
	return []domain.CurriculumUnit{
		{UnitID: "es1-t1", Stage: "Early Stage 1", Term: 1, Name: "Living Things Around Us", Description: "Explore what living things need to survive and grow.", Outcomes: []string{"STe-3LW-ST"}, Weeks: 8},
		{UnitID: "es1-t2", Stage: "Early Stage 1", Term: 2, Name: "Earth Materials", Description: "Observe and describe familiar materials from the Earth.", Outcomes: []string{"STe-4ES-S"}, Weeks: 8},
		{UnitID: "es1-t4", Stage: "Early Stage 1", Term: 4, Name: "Everyday Changes", Description: "Investigate how everyday materials change when combined.", Outcomes: []string{"STe-5CW-ST"}, Weeks: 8},
		{UnitID: "s1-t1", Stage: "Stage 1", Term: 1, Name: "Growing and Changing", Description: "Follow the life cycles of plants and animals.", Outcomes: []string{"ST1-4LW-S"}, Weeks: 8},
		{UnitID: "s1-t3", Stage: "Stage 1", Term: 3, Name: "Our Changing Earth", Description: "Examine how water and weather shape the Earth's surface.", Outcomes: []string{"ST1-10ES-S"}, Weeks: 8},
		{UnitID: "s1-t4", Stage: "Stage 1", Term: 4, Name: "Mixing and Reacting", Description: "Investigate observable changes when substances are mixed.", Outcomes: []string{"ST1-6MW-S"}, Weeks: 8},
		{UnitID: "s1-t5", Stage: "Stage 1", Term: 5, Name: "Light and Sound", Description: "Explore sources and behaviour of light and sound.", Outcomes: []string{"ST1-8PW-S"}, Weeks: 8},
		{UnitID: "s1-t6", Stage: "Stage 1", Term: 6, Name: "Forces Around Us", Description: "Describe the effects of pushes and pulls on familiar objects.", Outcomes: []string{"ST1-9PW-S"}, Weeks: 8},
		{UnitID: "comp-a-t2", Stage: "Life Skills", Component: "Component A", Term: 2, Name: "Living World Investigations", Description: "Plan and conduct investigations of living things.", Outcomes: []string{"SCLS-LW1"}, Weeks: 10},
		{UnitID: "comp-a-t4", Stage: "Life Skills", Component: "Component A", Term: 4, Name: "Properties of Matter", Description: "Compare the observable properties of common substances.", Outcomes: []string{"SCLS-CW1"}, Weeks: 10},
		{UnitID: "comp-b-t2", Stage: "Life Skills", Component: "Component B", Term: 2, Name: "Earth Systems", Description: "Model the processes that move water through the environment.", Outcomes: []string{"SCLS-ES1"}, Weeks: 10},
		{UnitID: "comp-c-t2", Stage: "Life Skills", Component: "Component C", Term: 2, Name: "Microscopic Life", Description: "Investigate microorganisms and their role in everyday life.", Outcomes: []string{"SCLS-LW2"}, Weeks: 10},
		{UnitID: "comp-e-t3", Stage: "Life Skills", Component: "Component E", Term: 3, Name: "Motion and Energy", Description: "Measure and describe the motion of objects.", Outcomes: []string{"SCLS-PW1"}, Weeks: 10},
	}
}

// UnitMappings associates experiment titles with curriculum unit codes.
func UnitMappings() map[string][]string {
	return map[string][]string{
		"Growing Beans: Watch Seeds Sprout":    {"es1-t1", "s1-t1"},
		"Bread Mold Experiment":                {"comp-a-t2", "comp-c-t2"},
		"Volcano Eruption: Acid-Base Reaction": {"es1-t4", "s1-t4"},
		"Rainbow in a Jar: Density Layers":     {"comp-a-t4"},
		"Make a Rainbow with Sunlight":         {"s1-t5", "s1-t6"},
		"Build a Simple Pendulum":              {"comp-e-t3"},
		"Rock and Mineral Observation":         {"es1-t2", "s1-t3"},
		"Water Cycle in a Bag":                 {"comp-b-t2", "s1-t3"},
	}
}
