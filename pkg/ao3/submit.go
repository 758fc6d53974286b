package ao3

import (
	"fmt"

	"github.com/podfickle/podfickle/pkg/browser"
	"github.com/podfickle/podfickle/pkg/podfic"
)

// NewPodfic fills the new work form for a podfic of its parent work. The form
// is not submitted.
func (c *Client) NewPodfic(p podfic.PodficWork) error {
	work := p.Parent.Work
	c.logger.Infof("Creating new podfic work based on '%s'", work.ID)

	rating, err := work.SingleRating()
	if err != nil {
		return err
	}
	notes, err := p.Notes()
	if err != nil {
		return fmt.Errorf("render notes: %w", err)
	}
	content, err := p.Content()
	if err != nil {
		return fmt.Errorf("render content: %w", err)
	}

	if _, err := c.accessor.Navigate("/works/new"); err != nil {
		return err
	}

	if err := c.selectByLabel(IDRating, rating); err != nil {
		return err
	}

	if err := c.fillWarnings(work.Warning); err != nil {
		return err
	}
	if err := c.fillTags(IDFandom, work.Fandom); err != nil {
		return err
	}
	for _, category := range work.Category {
		if err := c.clickCheckbox(category); err != nil {
			return err
		}
	}
	if err := c.fillTags(IDRelationship, work.Relationship); err != nil {
		return err
	}
	if err := c.fillTags(IDCharacter, work.Character); err != nil {
		return err
	}
	if err := c.fillTags(IDFreeform, work.Freeform); err != nil {
		return err
	}
	if err := c.fillTags(IDFreeform, PodficTags); err != nil {
		return err
	}

	if err := c.typeInto(IDTitle, TitlePrefix+work.Title); err != nil {
		return err
	}
	if err := c.typeInto(IDSummary, work.Summary); err != nil {
		return err
	}
	if err := c.click(IDEndNotesShow); err != nil {
		return err
	}
	if err := c.typeInto(IDEndNotes, notes); err != nil {
		return err
	}

	if err := c.click(IDParentShow); err != nil {
		return err
	}
	if err := c.typeInto(IDParentURL, work.URL); err != nil {
		return err
	}

	if err := c.fillSeries(work.SeriesPart); err != nil {
		return err
	}

	if err := c.selectByLabel(IDLanguage, Language); err != nil {
		return err
	}

	return c.typeInto(IDContent, content)
}

// fillWarnings ticks one checkbox per warning. The opt-out warning is shown
// differently on work pages than on the form.
func (c *Client) fillWarnings(warnings []string) error {
	for _, warning := range warnings {
		value := warning
		if warning == WarningCreatorChoseNot {
			value = WarningChooseNot
		}
		if err := c.clickCheckbox(value); err != nil {
			return err
		}
	}
	return nil
}

// fillTags types each tag into an autocomplete field, committing it with Enter.
func (c *Client) fillTags(id string, tags []string) error {
	if len(tags) == 0 {
		return nil
	}

	field, err := c.accessor.ByID(id)
	if err != nil {
		return err
	}
	for _, tag := range tags {
		if err := field.Type(tag); err != nil {
			return fmt.Errorf("type tag %q into #%s: %w", tag, id, err)
		}
		if err := field.Press(browser.KeyEnter); err != nil {
			return fmt.Errorf("commit tag %q in #%s: %w", tag, id, err)
		}
	}
	return nil
}

func (c *Client) fillSeries(part *podfic.SeriesPart) error {
	if part == nil {
		return nil
	}

	if err := c.click(IDSeriesShow); err != nil {
		return err
	}
	name := TitlePrefix + part.Series
	if part.Part == 1 {
		return c.typeInto(IDSeriesTitle, name)
	}
	return c.selectByLabel(IDSeriesSelect, name)
}

func (c *Client) clickCheckbox(value string) error {
	el, err := c.accessor.Query(browser.AttrSelector("input", "value", value))
	if err != nil {
		return err
	}
	if err := el.Click(); err != nil {
		return fmt.Errorf("click checkbox %q: %w", value, err)
	}
	return nil
}
