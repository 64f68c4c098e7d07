//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

package dataset

import "time"

// DefaultName is the name of the built-in smoke-test dataset.
const DefaultName = "default_qa"

// Default returns the built-in question-answering dataset used for smoke
// evaluation when no curated dataset exists yet. Each call returns a fresh
// copy.
func Default() *Dataset {
	return &Dataset{
		Name:              DefaultName,
		Description:       "Built-in QA smoke-test dataset",
		CreationTimestamp: time.Unix(0, 0).UTC(),
		Entries: []*Entry{
			{
				Question: "What is the capital of France?",
				Contexts: []string{
					"France is a country in Western Europe.",
					"Paris is the capital and most populous city of France.",
				},
				Answer:      "The capital of France is Paris.",
				GroundTruth: "Paris",
				Source:      SourceManual,
			},
			{
				Question: "How does photosynthesis work?",
				Contexts: []string{
					"Photosynthesis is the process by which plants convert light energy into chemical energy.",
					"During photosynthesis, plants use sunlight, carbon dioxide, and water to produce glucose and oxygen.",
					"Chlorophyll in plant leaves captures sunlight for the photosynthesis process.",
				},
				Answer: "Photosynthesis is the process where plants use sunlight, carbon dioxide, and water to create " +
					"glucose and oxygen, with chlorophyll capturing the light energy.",
				GroundTruth: "Photosynthesis converts light energy to chemical energy using sunlight, CO2, and water " +
					"to produce glucose and oxygen.",
				Source: SourceManual,
			},
			{
				Question: "What causes earthquakes?",
				Contexts: []string{
					"Earthquakes are caused by the sudden movement of tectonic plates in the Earth's crust.",
					"The Earth's crust is made up of several large plates that move slowly over time.",
					"When these plates get stuck and then suddenly slip, they release energy in the form of seismic waves.",
				},
				Answer: "Earthquakes are caused by the sudden movement and slipping of tectonic plates in the Earth's " +
					"crust, which releases energy as seismic waves.",
				GroundTruth: "Earthquakes result from sudden movement of tectonic plates releasing seismic energy.",
				Source:      SourceManual,
			},
			{
				Question: "What is artificial intelligence?",
				Contexts: []string{
					"Artificial Intelligence (AI) refers to computer systems that can perform tasks typically requiring human intelligence.",
					"AI systems can learn, reason, and make decisions based on data and algorithms.",
					"Machine learning is a subset of AI that enables systems to learn from data without explicit programming.",
				},
				Answer: "Artificial Intelligence is computer systems that perform human-like tasks such as learning, " +
					"reasoning, and decision-making using data and algorithms.",
				GroundTruth: "AI refers to computer systems that simulate human intelligence through learning, " +
					"reasoning, and decision-making.",
				Source: SourceManual,
			},
			{
				Question: "How do vaccines work?",
				Contexts: []string{
					"Vaccines work by training the immune system to recognize and fight specific diseases.",
					"They contain weakened or dead parts of the disease-causing organism or blueprints for making such parts.",
					"When vaccinated, the immune system produces antibodies and remembers how to fight the disease in the future.",
				},
				Answer: "Vaccines train the immune system by exposing it to weakened disease parts, causing the body " +
					"to produce antibodies and develop immunity for future protection.",
				GroundTruth: "Vaccines stimulate immune response by introducing weakened pathogens, creating " +
					"antibodies and immunological memory.",
				Source: SourceManual,
			},
		},
	}
}
