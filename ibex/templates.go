package ibex

// DefaultStimType is the JS literal type name used for stimulus items when
// the caller does not override it.
const DefaultStimType = "DashedSentence"

// fragmentJoiner separates rendered questions and answers.
const fragmentJoiner = ", "

// The templates below are reproduced byte-for-byte from the experiment
// runner's known-good configuration files; do not reformat them. Sentence
// and question text is inserted verbatim, with no escaping, so generated
// output stays byte-compatible with existing files.

// documentTemplate is the full document scaffold. Placeholders: the
// rshuffle condition list, then the concatenated stimulus fragments.
const documentTemplate = `var shuffleSequence = seq("intro", sepWith("sep", seq("practice", rshuffle(%s))))
var practiceItemTypes = ["practice"];

var defaults = [
    "Separator", {
        transfer: 1000,
        normalMessage: "Please wait for the next sentence.",
        errorMessage: "Wrong. Please wait for the next sentence."
    },
    "DashedSentence", {
        mode: "self-paced reading"
    },
    "AcceptabilityJudgment", {
        as: ["1", "2", "3", "4", "5", "6", "7"],
        presentAsScale: true,
        instructions: "Use number keys or click boxes to answer.",
        leftComment: "(Bad)", rightComment: "(Good)"
    },
    "Question", {
        hasCorrect: true
    },
    "Message", {
        hideProgressBar: true
    },
    "Form", {
        hideProgressBar: true,
        continueOnReturn: true,
        saveReactionTime: true
    }
];

var completionMessage = "Thank you for your participation. The results were succesffully transmitted. Your participation code is FLYING MONKEYS."
var items = [
  ["sep", "Separator", { }],
  ["setcounter", "__SetCounter__", { }],
  ["intro", "Form", {
    html: { include: "example_intro.html" },
    validators: {
      age: function (s) { if (s.match(/^\d+$/)) return true;
                           else return "Bad value for ‘age’"; }
      }
  } ],
    ["practice", "DashedSentence",
     {s: "This is a practice sentence to get you used to reading sentences like this."}],
    ["practice", "DashedSentence",
     {s: "This is another practice sentence with a practice question following it."},
                 "Separator", {normalMessage: "Get ready for the question..."},
                 "Question", {hasCorrect: false, randomOrder: false,
                              q: "How would you like to answer this question?",
                              as: ["Press 1 or click here for this answer.",
                                   "Press 2 or click here for this answer.",
                                   "Press 3 or click here for this answer."]}],
    ["practice", "DashedSentence",
     {s: "This is the last practice sentence before the experiment begins."}],

    %s
];
`

// specTemplate renders a non-filler spec fragment: condition label, item.
const specTemplate = `["%s", %d]`

// stimTemplate renders one stimulus: spec fragment, stimulus type,
// sentence, rendered questions.
const stimTemplate = `
[%s, "%s", {s: "%s"},
"Separator", {normalMessage: "Get ready for the question..."}, %s]
`

// questionTemplate renders one question: question text, quoted answers.
const questionTemplate = `
"Question", {q: "%s", as: [%s]}
`
