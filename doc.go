// Package sentsplit splits Ancient Greek and Latin text into sentences.
//
// Classical texts punctuate differently from modern languages: Latin
// editions end sentences with a colon, while the Greek middle dot (·, ano
// teleia) separates clauses inside a sentence. A Resolver combines a
// language's punctuation profile with a pretrained Punkt-style model of
// abbreviations, collocations and sentence starters.
//
// # Quick Start
//
//	r, err := sentsplit.New("latin", sentsplit.WithResourceRoot("/srv/sentsplit_data"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sentences, err := r.Tokenize("Cn. Pompeius venit. Caesar Galliam vicit: hostes fugerunt.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// ["Cn. Pompeius venit." "Caesar Galliam vicit:" "hostes fugerunt."]
//
// # Model Files
//
// Models are read from <root>/<language>/<artifact>, where root defaults to
// $SENTSPLIT_DATA or ~/sentsplit_data:
//   - greek/greek.json
//   - latin/latin.json
//
// Artifacts are Punkt JSON training data. The sentsplit convert command
// rewrites them in the compact protobuf encoding (.pb) read by the same
// loader.
//
// # Thread Safety
//
// Resolver is immutable and safe for concurrent use. Cache shares one
// Resolver per language across goroutines and loads each model once.
package sentsplit
